package admin

import "sessionvault/internal/domain/admin"

type loginInput struct {
	Body loginRequest
}

// Поля не required на уровне схемы: отсутствие поля должно давать 400 из
// сервисной валидации, а не 422 от huma.
type loginRequest struct {
	Email    string `json:"email" required:"false"`
	Password string `json:"password" required:"false"`
}

type loginOutput struct {
	Body loginResponse
}

type loginResponse struct {
	Token   string      `json:"token"`
	Account accountInfo `json:"account"`
}

type accountInfo struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Admins []admin.Account `json:"admins"`
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Email    string `json:"email" required:"false"`
	Password string `json:"password" required:"false"`
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	Account accountInfo `json:"account"`
	Status  string      `json:"status"`
}

type deleteInput struct {
	ID string `query:"id" doc:"ID аккаунта"`
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Status string `json:"status"`
}
