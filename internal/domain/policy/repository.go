package policy

import "context"

type Repository interface {
	List(ctx context.Context) ([]Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
}
