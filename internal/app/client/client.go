// Package client — клиентская часть adminctl: HTTP-доступ к серверу,
// локальный токен и sqlite-кэш записей.
package client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"sessionvault/internal/app/client/config"
	"sessionvault/internal/domain/admin"
	"sessionvault/internal/domain/session"
)

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	cache      *SQLiteCache
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl := NewHTTPClient(cfg, log)

	cache, err := NewSQLiteCache(cfg.CachePath)
	if err != nil {
		// Без кэша работать можно, просто pull будет недоступен.
		log.Warn("failed to open local cache", "error", err)
		cache = nil
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		cache:      cache,
	}

	if token, err := app.loadToken(); err == nil && token != "" {
		httpCl.SetToken(token)
		log.Debug("token loaded from file")
	}

	return app, nil
}

func (a *App) Close() error {
	if a.cache != nil {
		return a.cache.Close()
	}
	return nil
}

// CheckConnection проверяет доступность сервера.
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// Login аутентифицируется на сервере и сохраняет токен локально.
func (a *App) Login(ctx context.Context, email, password string) (string, error) {
	result, err := a.httpClient.Login(ctx, email, password)
	if err != nil {
		return "", err
	}

	if err := a.saveToken(result.Token); err != nil {
		return "", fmt.Errorf("save token: %w", err)
	}

	return result.Account.Email, nil
}

// Logout удаляет локальный токен. Сервер токены не отзывает, выданный
// токен остается валидным до истечения срока.
func (a *App) Logout() error {
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	a.httpClient.SetToken("")
	return nil
}

// Authenticated сообщает, есть ли сохраненный токен.
func (a *App) Authenticated() bool {
	return a.httpClient.token != ""
}

func (a *App) ListSessions(ctx context.Context) ([]session.Record, error) {
	return a.httpClient.ListSessions(ctx)
}

func (a *App) DeleteSession(ctx context.Context, id int) error {
	return a.httpClient.DeleteSession(ctx, id)
}

// PullSessions скачивает все записи с сервера в локальный кэш и возвращает
// их количество.
func (a *App) PullSessions(ctx context.Context) (int, error) {
	if a.cache == nil {
		return 0, fmt.Errorf("local cache is not available")
	}

	records, err := a.httpClient.ListSessions(ctx)
	if err != nil {
		return 0, err
	}

	if err := a.cache.Replace(records); err != nil {
		return 0, fmt.Errorf("update cache: %w", err)
	}

	return len(records), nil
}

// CachedSessions возвращает записи из локального кэша без похода на сервер.
func (a *App) CachedSessions() ([]session.Record, error) {
	if a.cache == nil {
		return nil, fmt.Errorf("local cache is not available")
	}
	return a.cache.List()
}

func (a *App) ListAdmins(ctx context.Context) ([]admin.Account, error) {
	return a.httpClient.ListAdmins(ctx)
}

func (a *App) CreateAdmin(ctx context.Context, email, password string) (*admin.Account, error) {
	return a.httpClient.CreateAdmin(ctx, email, password)
}

func (a *App) DeleteAdmin(ctx context.Context, id int) error {
	return a.httpClient.DeleteAdmin(ctx, id)
}

func (a *App) saveToken(token string) error {
	return os.WriteFile(a.config.TokenPath, []byte(token), 0600)
}

func (a *App) loadToken() (string, error) {
	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
