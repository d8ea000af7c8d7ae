package admin

import "time"

// Account — учётная запись администратора. PasswordHash никогда не попадает
// в ответы API.
type Account struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
