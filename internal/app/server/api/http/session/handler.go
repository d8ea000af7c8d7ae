package session

import (
	"context"
	"errors"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"sessionvault/internal/app/server/api/http/middleware/auth"
	"sessionvault/internal/app/server/api/http/middleware/clientip"
	"sessionvault/internal/domain/session"
)

type Handler struct {
	service   session.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(service session.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.submitOp(), h.submit)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.deleteOp(), h.delete)
}

// submit — публичный write-path. Авторизация не требуется.
func (h *Handler) submit(ctx context.Context, input *submitInput) (*submitOutput, error) {
	ip, _ := clientip.FromContext(ctx)

	id, err := h.service.Submit(ctx, input.Body.AccountName, input.Body.SessionData, ip)
	if err != nil {
		if errors.Is(err, session.ErrInvalidInput) {
			return nil, huma.Error400BadRequest("account name and session data are required")
		}
		return nil, huma.Error500InternalServerError("failed to save submission")
	}

	return &submitOutput{
		Body: submitResponse{ID: id, Status: "Ok"},
	}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	if _, ok := auth.GetIdentity(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	records, err := h.service.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to load records")
	}

	if records == nil {
		records = []session.Record{}
	}

	return &listOutput{
		Body: listResponse{Records: records},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if _, ok := auth.GetIdentity(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if input.ID == "" {
		return nil, huma.Error400BadRequest("missing id parameter")
	}

	id, err := strconv.Atoi(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid id parameter")
	}

	if err := h.service.Delete(ctx, id); err != nil {
		return nil, huma.Error500InternalServerError("failed to delete record")
	}

	return &deleteOutput{
		Body: deleteResponse{Status: "Ok"},
	}, nil
}
