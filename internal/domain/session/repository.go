package session

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) (int, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, id int) error
}
