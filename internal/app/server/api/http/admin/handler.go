package admin

import (
	"context"
	"errors"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"sessionvault/internal/app/server/api/http/middleware/auth"
	"sessionvault/internal/domain/admin"
	"sessionvault/internal/token"
)

type Handler struct {
	service   admin.Servicer
	tokens    *token.Manager
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(service admin.Servicer, tokens *token.Manager, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		tokens:    tokens,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.deleteOp(), h.delete)
}

// login обменивает email+пароль на подписанный токен. Текст ошибки одинаков
// для несуществующего email и неверного пароля.
func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	account, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			return nil, huma.Error400BadRequest("email and password are required")
		case errors.Is(err, admin.ErrInvalidCredentials):
			return nil, huma.Error401Unauthorized(admin.ErrInvalidCredentials.Error())
		default:
			return nil, huma.Error500InternalServerError("login failed")
		}
	}

	signed, err := h.tokens.Issue(token.Identity{ID: account.ID, Email: account.Email})
	if err != nil {
		h.log.Error("failed to issue token", "error", err)
		return nil, huma.Error500InternalServerError("login failed")
	}

	return &loginOutput{
		Body: loginResponse{
			Token:   signed,
			Account: accountInfo{ID: account.ID, Email: account.Email},
		},
	}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	if _, ok := auth.GetIdentity(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	accounts, err := h.service.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to load admins")
	}

	if accounts == nil {
		accounts = []admin.Account{}
	}

	return &listOutput{
		Body: listResponse{Admins: accounts},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	if _, ok := auth.GetIdentity(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	account, err := h.service.Create(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidInput):
			return nil, huma.Error400BadRequest("email and password are required")
		case errors.Is(err, admin.ErrEmailTaken):
			return nil, huma.Error400BadRequest(admin.ErrEmailTaken.Error())
		default:
			return nil, huma.Error500InternalServerError("failed to create admin")
		}
	}

	return &createOutput{
		Body: createResponse{
			Account: accountInfo{ID: account.ID, Email: account.Email},
			Status:  "Ok",
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if input.ID == "" {
		return nil, huma.Error400BadRequest("missing id parameter")
	}

	id, err := strconv.Atoi(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid id parameter")
	}

	if err := h.service.Delete(ctx, identity.ID, id); err != nil {
		if errors.Is(err, admin.ErrSelfDelete) {
			return nil, huma.Error400BadRequest(admin.ErrSelfDelete.Error())
		}
		return nil, huma.Error500InternalServerError("failed to delete admin")
	}

	return &deleteOutput{
		Body: deleteResponse{Status: "Ok"},
	}, nil
}
