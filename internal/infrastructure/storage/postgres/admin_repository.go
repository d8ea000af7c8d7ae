package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"sessionvault/internal/domain/admin"
)

// uniqueViolation — код ошибки postgres для нарушения unique constraint.
const uniqueViolation = "23505"

type AdminRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAdminRepository(pool *pgxpool.Pool, log *slog.Logger) *AdminRepository {
	return &AdminRepository{
		pool: pool,
		log:  log.With("component", "admin_repository"),
	}
}

func (r *AdminRepository) Create(ctx context.Context, email, passwordHash string) (admin.Account, error) {
	var account admin.Account
	err := r.pool.QueryRow(ctx,
		`INSERT INTO admins (email, password_hash) VALUES ($1, $2)
		 RETURNING id, email, created_at`,
		email, passwordHash).Scan(&account.ID, &account.Email, &account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return admin.Account{}, admin.ErrEmailTaken
		}
		r.log.Error("failed to create admin", "error", err)
		return admin.Account{}, fmt.Errorf("create admin: %w", err)
	}

	return account, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (admin.Account, error) {
	var account admin.Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM admins WHERE email = $1`,
		email).Scan(&account.ID, &account.Email, &account.PasswordHash, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Account{}, admin.ErrNotFound
		}
		r.log.Error("failed to find admin", "error", err)
		return admin.Account{}, fmt.Errorf("find admin: %w", err)
	}

	return account, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]admin.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, email, created_at FROM admins ORDER BY id`)
	if err != nil {
		r.log.Error("failed to list admins", "error", err)
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var accounts []admin.Account
	for rows.Next() {
		var account admin.Account
		if err := rows.Scan(&account.ID, &account.Email, &account.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *AdminRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id); err != nil {
		r.log.Error("failed to delete admin", "admin_id", id, "error", err)
		return fmt.Errorf("delete admin: %w", err)
	}
	return nil
}
