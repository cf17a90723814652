package employee

import (
	"context"
)

// EmployeeRepository defines data access for the roster and asset inventory.
type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)

	// ListAssets returns the equipment assigned to an employee.
	ListAssets(ctx context.Context, employeeID string) ([]Asset, error)
}
