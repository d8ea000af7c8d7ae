package session

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"sessionvault/internal/app/server/api/http/middleware/auth"
	"sessionvault/internal/domain/session"
	"sessionvault/internal/token"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Submit(ctx context.Context, accountName, sessionData, ipAddress string) (int, error) {
	args := m.Called(ctx, accountName, sessionData, ipAddress)
	return args.Int(0), args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]session.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]session.Record), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func authCtx() context.Context {
	return auth.WithIdentity(context.Background(), token.Identity{ID: 1, Email: "admin@example.com"})
}

func TestHandler_Submit(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	payload := `{"accessToken":"abc"}`
	svc.On("Submit", mock.Anything, "alice", payload, "").Return(10, nil)

	input := &submitInput{}
	input.Body.AccountName = "alice"
	input.Body.SessionData = payload

	resp, err := h.submit(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Body.ID)
	assert.Equal(t, "Ok", resp.Body.Status)

	svc.AssertExpectations(t)
}

func TestHandler_Submit_Validation(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	svc.On("Submit", mock.Anything, "", "data", "").
		Return(0, fmt.Errorf("%w: account name is required", session.ErrInvalidInput))

	input := &submitInput{}
	input.Body.SessionData = "data"

	_, err := h.submit(context.Background(), input)
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.GetStatus())
}

// Отсутствующее поле тела должно проходить схему и получать 400 от
// сервисной валидации, а не 422 на уровне декодера.
func TestHandler_Submit_AbsentFieldIs400(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	_, api := humatest.New(t)
	h.SetupRoutes(api)

	svc.On("Submit", mock.Anything, "", "x", "").
		Return(0, fmt.Errorf("%w: account name is required", session.ErrInvalidInput))

	resp := api.Post("/api/sessions", map[string]any{"sessionData": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	svc.AssertExpectations(t)
}

func TestHandler_Submit_StorageError(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	svc.On("Submit", mock.Anything, "alice", "data", "").
		Return(0, fmt.Errorf("create session record: connection refused"))

	input := &submitInput{}
	input.Body.AccountName = "alice"
	input.Body.SessionData = "data"

	_, err := h.submit(context.Background(), input)
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.GetStatus())
	// Внутренние детали не должны утекать наружу
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	tok := "tok-abc"
	records := []session.Record{
		{ID: 2, AccountName: "b", SessionData: "{}", AccessToken: &tok, CreatedAt: time.Now()},
		{ID: 1, AccountName: "a", SessionData: "raw", CreatedAt: time.Now().Add(-time.Hour)},
	}
	svc.On("List", mock.Anything).Return(records, nil)

	resp, err := h.list(authCtx(), nil)
	require.NoError(t, err)
	assert.Equal(t, records, resp.Body.Records)
}

func TestHandler_List_Unauthorized(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	_, err := h.list(context.Background(), nil)
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.GetStatus())

	svc.AssertNotCalled(t, "List")
}

func TestHandler_List_EmptyIsNotNull(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	svc.On("List", mock.Anything).Return([]session.Record{}, nil)

	resp, err := h.list(authCtx(), nil)
	require.NoError(t, err)
	assert.NotNil(t, resp.Body.Records)
	assert.Empty(t, resp.Body.Records)
}

func TestHandler_Delete(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	svc.On("Delete", mock.Anything, 42).Return(nil)

	resp, err := h.delete(authCtx(), &deleteInput{ID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "Ok", resp.Body.Status)
}

func TestHandler_Delete_BadInput(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "missing id", id: ""},
		{name: "non-numeric id", id: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			h := NewHandler(svc, slog.Default(), nil, nil)

			_, err := h.delete(authCtx(), &deleteInput{ID: tt.id})
			require.Error(t, err)

			var statusErr huma.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, http.StatusBadRequest, statusErr.GetStatus())

			svc.AssertNotCalled(t, "Delete")
		})
	}
}

func TestHandler_Delete_Unauthorized(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil, nil)

	_, err := h.delete(context.Background(), &deleteInput{ID: "1"})
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.GetStatus())
}
