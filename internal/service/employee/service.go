package employee

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aicorp/command-center-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	repo employee.EmployeeRepository
	now  func() time.Time
}

func NewEmployeeService(repo employee.EmployeeRepository) employee.EmployeeService {
	return NewEmployeeServiceWithClock(repo, time.Now)
}

// NewEmployeeServiceWithClock is used by tests that need a fixed clock.
func NewEmployeeServiceWithClock(repo employee.EmployeeRepository, now func() time.Time) employee.EmployeeService {
	return &EmployeeServiceImpl{repo: repo, now: now}
}

func (s *EmployeeServiceImpl) List(ctx context.Context) (employee.ListEmployeesResponse, error) {
	emps, err := s.repo.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	resp := employee.ListEmployeesResponse{
		Employees: make([]employee.EmployeeResponse, 0, len(emps)),
		Total:     len(emps),
	}
	for _, emp := range emps {
		resp.Employees = append(resp.Employees, employee.ToEmployeeResponse(emp))
	}
	return resp, nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Role:       req.Role,
		Status:     employee.Status(req.Status),
		CreatedAt:  s.now(),
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) ListAssets(ctx context.Context, employeeID string) (employee.ListAssetsResponse, error) {
	assets, err := s.repo.ListAssets(ctx, employeeID)
	if err != nil {
		return employee.ListAssetsResponse{}, err
	}

	resp := employee.ListAssetsResponse{
		Assets: make([]employee.AssetResponse, 0, len(assets)),
		Total:  len(assets),
	}
	for _, asset := range assets {
		resp.Assets = append(resp.Assets, employee.ToAssetResponse(asset))
	}
	return resp, nil
}
