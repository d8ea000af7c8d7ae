package session

import "sessionvault/internal/domain/session"

type submitInput struct {
	Body submitRequest
}

// Поля не required на уровне схемы: отсутствие поля должно давать 400 из
// сервисной валидации, а не 422 от huma.
type submitRequest struct {
	AccountName string `json:"accountName" required:"false" doc:"Метка аккаунта"`
	SessionData string `json:"sessionData" required:"false" doc:"Непрозрачный payload, сохраняется как есть"`
}

type submitOutput struct {
	Body submitResponse
}

type submitResponse struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Records []session.Record `json:"records"`
}

type deleteInput struct {
	ID string `query:"id" doc:"ID записи"`
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Status string `json:"status"`
}
