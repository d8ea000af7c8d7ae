package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, passwordHash string) (Account, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.Get(0).(Account), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (Account, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(Account), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Account), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestHashPassword(t *testing.T) {
	hash1, err := HashPassword("secret123")
	require.NoError(t, err)
	hash2, err := HashPassword("secret123")
	require.NoError(t, err)

	// Соль per-call: одинаковый вход — разные хэши
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, VerifyPassword("secret123", hash1))
	assert.True(t, VerifyPassword("secret123", hash2))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("correct", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	// Испорченный хэш не роняет проверку
	assert.False(t, VerifyPassword("correct", "not-a-bcrypt-hash"))
	assert.False(t, VerifyPassword("correct", ""))
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	account := Account{ID: 1, Email: "admin@example.com", PasswordHash: hash}
	mockRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(account, nil)

	got, err := service.Authenticate(context.Background(), "admin@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, account, got)
}

// Несуществующий email и неверный пароль должны давать идентичную ошибку.
func TestService_Authenticate_UniformFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	hash, err := HashPassword("correct")
	require.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, "missing@example.com").Return(Account{}, ErrNotFound)
	mockRepo.On("FindByEmail", mock.Anything, "admin@example.com").
		Return(Account{ID: 1, Email: "admin@example.com", PasswordHash: hash}, nil)

	_, errMissing := service.Authenticate(context.Background(), "missing@example.com", "whatever")
	_, errWrongPass := service.Authenticate(context.Background(), "admin@example.com", "wrong")

	assert.ErrorIs(t, errMissing, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errMissing.Error(), errWrongPass.Error())
}

func TestService_Authenticate_Validation(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Authenticate(context.Background(), "", "pass")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Authenticate(context.Background(), "a@b.c", "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	mockRepo.AssertNotCalled(t, "FindByEmail")
}

func TestService_Create_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(Account{}, ErrNotFound)
	mockRepo.On("Create", mock.Anything, "new@example.com", mock.MatchedBy(func(hash string) bool {
		// В хранилище уходит хэш, не пароль
		return hash != "secret123" && VerifyPassword("secret123", hash)
	})).Return(Account{ID: 2, Email: "new@example.com"}, nil)

	account, err := service.Create(context.Background(), "new@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, 2, account.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("FindByEmail", mock.Anything, "taken@example.com").
		Return(Account{ID: 1, Email: "taken@example.com"}, nil)

	_, err := service.Create(context.Background(), "taken@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)

	mockRepo.AssertNotCalled(t, "Create")
}

// Пре-чек не атомарен: гонку решает unique constraint, который репозиторий
// мапит на ErrEmailTaken. Сервис должен пробросить её как есть.
func TestService_Create_DuplicateLostRace(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("FindByEmail", mock.Anything, "raced@example.com").Return(Account{}, ErrNotFound)
	mockRepo.On("Create", mock.Anything, "raced@example.com", mock.AnythingOfType("string")).
		Return(Account{}, ErrEmailTaken)

	_, err := service.Create(context.Background(), "raced@example.com", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Delete_SelfDeleteForbidden(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	err := service.Delete(context.Background(), 5, 5)
	assert.ErrorIs(t, err, ErrSelfDelete)

	mockRepo.AssertNotCalled(t, "Delete")
}

func TestService_Delete_OtherAccount(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, 7).Return(nil)

	err := service.Delete(context.Background(), 5, 7)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Seed(t *testing.T) {
	t.Run("creates when missing", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, slog.Default())

		mockRepo.On("FindByEmail", mock.Anything, "seed@example.com").Return(Account{}, ErrNotFound)
		mockRepo.On("Create", mock.Anything, "seed@example.com", mock.AnythingOfType("string")).
			Return(Account{ID: 1, Email: "seed@example.com"}, nil)

		account, created, err := service.Seed(context.Background(), "seed@example.com", "secret123")
		assert.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 1, account.ID)
	})

	t.Run("noop when present", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo, slog.Default())

		mockRepo.On("FindByEmail", mock.Anything, "seed@example.com").
			Return(Account{ID: 1, Email: "seed@example.com"}, nil)

		_, created, err := service.Seed(context.Background(), "seed@example.com", "secret123")
		assert.NoError(t, err)
		assert.False(t, created)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestService_List_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything).Return(nil, errors.New("database error"))

	_, err := service.List(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}
