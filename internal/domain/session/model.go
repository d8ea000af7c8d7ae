package session

import "time"

// Record — одна публичная отправка: метка аккаунта плюс непрозрачный payload.
// SessionData хранится байт-в-байт как прислал клиент и никогда не изменяется.
type Record struct {
	ID          int       `json:"id"`
	AccountName string    `json:"accountName"`
	SessionData string    `json:"sessionData"`
	AccessToken *string   `json:"accessToken"`
	IPAddress   *string   `json:"ipAddress"`
	CreatedAt   time.Time `json:"createdAt"`
}
