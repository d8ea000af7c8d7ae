package session

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Submit(ctx context.Context, accountName, sessionData, ipAddress string) (int, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, id int) error
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

// Submit сохраняет отправку как есть. SessionData не нормализуется и не
// проверяется как JSON — только best-effort извлечение accessToken.
func (s *Service) Submit(ctx context.Context, accountName, sessionData, ipAddress string) (int, error) {
	if strings.TrimSpace(accountName) == "" {
		return 0, fmt.Errorf("%w: account name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(sessionData) == "" {
		return 0, fmt.Errorf("%w: session data is required", ErrInvalidInput)
	}

	rec := &Record{
		AccountName: accountName,
		SessionData: sessionData,
		AccessToken: ExtractAccessToken(sessionData),
	}
	if ipAddress != "" {
		rec.IPAddress = &ipAddress
	}

	id, err := s.repo.Create(ctx, rec)
	if err != nil {
		s.log.Error("failed to create session record", "account_name", accountName, "error", err)
		return 0, fmt.Errorf("create session record: %w", err)
	}

	return id, nil
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list session records", "error", err)
		return nil, fmt.Errorf("list session records: %w", err)
	}
	return records, nil
}

// Delete удаляет запись по id. Отсутствующий id не считается ошибкой.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete session record", "record_id", id, "error", err)
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}
