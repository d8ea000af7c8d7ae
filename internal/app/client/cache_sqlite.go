package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"sessionvault/internal/domain/session"
)

// SQLiteCache — локальная копия записей, снятая командой pull. Позволяет
// смотреть данные без доступа к серверу.
type SQLiteCache struct {
	db *sql.DB
}

func NewSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	cache := &SQLiteCache{db: db}
	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache tables: %w", err)
	}

	return cache, nil
}

func (c *SQLiteCache) initTables() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			account_name TEXT NOT NULL,
			session_data TEXT NOT NULL,
			access_token TEXT,
			ip_address TEXT,
			created_at DATETIME NOT NULL,
			pulled_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_sessions_pulled ON sessions(pulled_at);
	`)
	return err
}

// Replace замещает содержимое кэша свежим снимком с сервера.
func (c *SQLiteCache) Replace(records []session.Record) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	now := time.Now().UTC()
	for _, rec := range records {
		_, err := tx.Exec(`
			INSERT INTO sessions (id, account_name, session_data, access_token, ip_address, created_at, pulled_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, rec.AccountName, rec.SessionData, rec.AccessToken, rec.IPAddress, rec.CreatedAt, now)
		if err != nil {
			return fmt.Errorf("save record %d: %w", rec.ID, err)
		}
	}

	return tx.Commit()
}

// List возвращает закэшированные записи, новые первыми.
func (c *SQLiteCache) List() ([]session.Record, error) {
	rows, err := c.db.Query(`
		SELECT id, account_name, session_data, access_token, ip_address, created_at
		FROM sessions
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query cache: %w", err)
	}
	defer rows.Close()

	var records []session.Record
	for rows.Next() {
		var rec session.Record
		if err := rows.Scan(&rec.ID, &rec.AccountName, &rec.SessionData, &rec.AccessToken, &rec.IPAddress, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cache row: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
