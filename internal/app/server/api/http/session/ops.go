package session

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) submitOp() huma.Operation {
	return huma.Operation{
		OperationID: "sessions-submit",
		Method:      http.MethodPost,
		Path:        "/api/sessions",
		Summary:     "Отправить session-данные (публичный)",
		Tags:        []string{"sessions"},
		Middlewares: h.public,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "sessions-list",
		Method:      http.MethodGet,
		Path:        "/api/sessions",
		Summary:     "Список отправок, новые первыми",
		Tags:        []string{"sessions"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "sessions-delete",
		Method:      http.MethodDelete,
		Path:        "/api/sessions",
		Summary:     "Удалить отправку по id",
		Tags:        []string{"sessions"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
