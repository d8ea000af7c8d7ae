package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"sessionvault/internal/token"
)

type Auth struct {
	tokens *token.Manager
	log    *slog.Logger
}

func New(tokens *token.Manager, log *slog.Logger) *Auth {
	return &Auth{
		tokens: tokens,
		log:    log.With("component", "auth_middleware"),
	}
}

type contextKey string

const identityKey contextKey = "adminIdentity"

// Middleware проверяет bearer-токен и кладёт identity администратора в контекст.
// Токен проверяется только по подписи и сроку — отзыва нет, удалённый аккаунт
// остаётся авторизованным до истечения токена.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")

		if len(header) < 7 || header[:7] != "Bearer " {
			a.unauthorized(ctx)
			return
		}

		identity, err := a.tokens.Verify(header[7:])
		if err != nil {
			a.log.Debug("token verification failed", "error", err)
			a.unauthorized(ctx)
			return
		}

		newCtx := WithIdentity(ctx.Context(), identity)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
	if err != nil {
		a.log.Error("failed to write unauthorized response", "error", err)
	}
}

func WithIdentity(ctx context.Context, identity token.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func GetIdentity(ctx context.Context) (token.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(token.Identity)
	return identity, ok
}
