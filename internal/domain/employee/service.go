package employee

import (
	"context"
)

type EmployeeService interface {
	List(ctx context.Context) (ListEmployeesResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	ListAssets(ctx context.Context, employeeID string) (ListAssetsResponse, error)
}
