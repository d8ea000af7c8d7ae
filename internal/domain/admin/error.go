package admin

import "errors"

var (
	ErrNotFound           = errors.New("admin not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("email or password incorrect")
	ErrEmailTaken         = errors.New("email already exists")
	ErrSelfDelete         = errors.New("cannot delete your own account")
)
