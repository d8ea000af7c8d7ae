package session

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
)
