package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// hashCost — фиксированный work factor для bcrypt.
const hashCost = 12

type Servicer interface {
	Authenticate(ctx context.Context, email, password string) (Account, error)
	Create(ctx context.Context, email, password string) (Account, error)
	List(ctx context.Context) ([]Account, error)
	Delete(ctx context.Context, callerID, targetID int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// HashPassword хэширует пароль с солью; два вызова на одном входе дают
// разные результаты.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword сравнивает пароль с хэшем. Испорченный хэш — просто false.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Authenticate ищет аккаунт по email и проверяет пароль. Несуществующий email
// и неверный пароль дают одну и ту же ошибку — существование аккаунта не
// раскрывается.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Account, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return Account{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("failed to find admin", "error", err)
		}
		return Account{}, ErrInvalidCredentials
	}

	if !VerifyPassword(password, account.PasswordHash) {
		return Account{}, ErrInvalidCredentials
	}

	return account, nil
}

// Create регистрирует нового администратора. Проверка занятости email — это
// read-then-write; гонку двух одновременных созданий окончательно решает
// unique constraint в хранилище (репозиторий мапит нарушение на ErrEmailTaken).
func (s *Service) Create(ctx context.Context, email, password string) (Account, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return Account{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return Account{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		s.log.Error("failed to check email", "error", err)
		return Account{}, fmt.Errorf("check email: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return Account{}, err
	}

	account, err := s.repo.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return Account{}, ErrEmailTaken
		}
		s.log.Error("failed to create admin", "error", err)
		return Account{}, fmt.Errorf("create admin: %w", err)
	}

	return account, nil
}

func (s *Service) List(ctx context.Context) ([]Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list admins", "error", err)
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return accounts, nil
}

// Delete удаляет аккаунт targetID. Аккаунт не может удалить сам себя.
func (s *Service) Delete(ctx context.Context, callerID, targetID int) error {
	if callerID == targetID {
		return ErrSelfDelete
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		s.log.Error("failed to delete admin", "admin_id", targetID, "error", err)
		return fmt.Errorf("delete admin: %w", err)
	}
	return nil
}

// Seed создаёт администратора, если его ещё нет. Используется шагом установки.
func (s *Service) Seed(ctx context.Context, email, password string) (Account, bool, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Account{}, false, fmt.Errorf("check seed admin: %w", err)
	}

	account, err := s.Create(ctx, email, password)
	if err != nil {
		return Account{}, false, err
	}
	return account, true, nil
}
