// Сбор и администрирование session-данных:
// публичная отправка, просмотр и удаление записей администратором,
// управление аккаунтами администраторов.
//
// POST   /api/sessions     # Отправка (публичный)
// GET    /api/sessions     # Список записей (auth)
// DELETE /api/sessions?id= # Удалить запись (auth)
// POST   /api/auth/login   # Логин (публичный)
// GET    /api/admins       # Список администраторов (auth)
// POST   /api/admins       # Создать администратора (auth)
// DELETE /api/admins?id=   # Удалить администратора (auth)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	adminAPI "sessionvault/internal/app/server/api/http/admin"
	healthAPI "sessionvault/internal/app/server/api/http/health"
	"sessionvault/internal/app/server/api/http/middleware"
	"sessionvault/internal/app/server/api/http/middleware/auth"
	"sessionvault/internal/app/server/api/http/middleware/clientip"
	"sessionvault/internal/app/server/api/http/middleware/logger"
	sessionAPI "sessionvault/internal/app/server/api/http/session"
	"sessionvault/internal/app/server/web"
	admindom "sessionvault/internal/domain/admin"
	sessiondom "sessionvault/internal/domain/session"
	"sessionvault/internal/infrastructure/storage/postgres"
	"sessionvault/internal/token"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Session *sessionAPI.Handler
	Admin   *adminAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register плюс
// встроенными страницами UI.
func New(storage *postgres.Storage, tokens *token.Manager, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("SessionVault API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, tokens, log)
	h.Health.SetupRoutes(API)
	h.Session.SetupRoutes(API)
	h.Admin.SetupRoutes(API)

	web.Register(mux)

	return mux
}

func handlers(storage *postgres.Storage, tokens *token.Manager, log *slog.Logger) *Handlers {
	authMW := auth.New(tokens, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	sessionRepo := postgres.NewSessionRepository(storage.Pool(), log)
	sessionService := sessiondom.NewService(sessionRepo, log)
	middlewares.Add(clientip.Middleware())
	middlewares.Add(loggerMW.Middleware())
	sessionPublic := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	sessionProtected := middlewares.GetAllAndClear()
	sessionHandler := sessionAPI.NewHandler(sessionService, log, sessionPublic, sessionProtected)

	adminRepo := postgres.NewAdminRepository(storage.Pool(), log)
	adminService := admindom.NewService(adminRepo, log)
	middlewares.Add(loggerMW.Middleware())
	adminPublic := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	adminProtected := middlewares.GetAllAndClear()
	adminHandler := adminAPI.NewHandler(adminService, tokens, log, adminPublic, adminProtected)

	return &Handlers{
		Health:  healthHandler,
		Session: sessionHandler,
		Admin:   adminHandler,
	}
}
