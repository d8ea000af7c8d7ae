package admin

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, email, passwordHash string) (Account, error)
	FindByEmail(ctx context.Context, email string) (Account, error)
	List(ctx context.Context) ([]Account, error)
	Delete(ctx context.Context, id int) error
}
