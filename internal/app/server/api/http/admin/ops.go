package admin

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Авторизация администратора",
		Tags:        []string{"admins"},
		Middlewares: h.public,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "admins-list",
		Method:      http.MethodGet,
		Path:        "/api/admins",
		Summary:     "Список администраторов",
		Tags:        []string{"admins"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "admins-create",
		Method:      http.MethodPost,
		Path:        "/api/admins",
		Summary:     "Создать администратора",
		Tags:        []string{"admins"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "admins-delete",
		Method:      http.MethodDelete,
		Path:        "/api/admins",
		Summary:     "Удалить администратора (кроме самого себя)",
		Tags:        []string{"admins"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
