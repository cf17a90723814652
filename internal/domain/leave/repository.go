package leave

import (
	"context"
)

type RequestRepository interface {
	List(ctx context.Context) ([]Request, error)
	ListByEmployee(ctx context.Context, employeeEmail string) ([]Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Create(ctx context.Context, req Request) (Request, error)
	Update(ctx context.Context, req Request) error
}
