package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"sessionvault/internal/domain/session"
)

type SessionRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSessionRepository(pool *pgxpool.Pool, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		pool: pool,
		log:  log.With("component", "session_repository"),
	}
}

func (r *SessionRepository) Create(ctx context.Context, rec *session.Record) (int, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO sessions (account_name, session_data, access_token, ip_address)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		rec.AccountName, rec.SessionData, rec.AccessToken, rec.IPAddress,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err != nil {
		r.log.Error("failed to create session record", "error", err)
		return 0, fmt.Errorf("create session record: %w", err)
	}

	return rec.ID, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]session.Record, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, account_name, session_data, access_token, ip_address, created_at
		 FROM sessions
		 ORDER BY created_at DESC`)
	if err != nil {
		r.log.Error("failed to list session records", "error", err)
		return nil, fmt.Errorf("list session records: %w", err)
	}
	defer rows.Close()

	var records []session.Record
	for rows.Next() {
		var rec session.Record
		err := rows.Scan(&rec.ID, &rec.AccountName, &rec.SessionData,
			&rec.AccessToken, &rec.IPAddress, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Delete не проверяет существование записи: повторное удаление того же id
// проходит успешно.
func (r *SessionRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		r.log.Error("failed to delete session record", "record_id", id, "error", err)
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}
