package memory

import (
	"context"
	"sync"

	"github.com/aicorp/command-center-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []employee.Employee
	assets    map[string][]employee.Asset
}

func NewEmployeeRepository(seed []employee.Employee, assets map[string][]employee.Asset) *EmployeeRepository {
	if assets == nil {
		assets = make(map[string][]employee.Asset)
	}
	return &EmployeeRepository{
		employees: append([]employee.Employee(nil), seed...),
		assets:    assets,
	}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	r.employees = append(r.employees, emp)
	return emp, nil
}

func (r *EmployeeRepository) ListAssets(ctx context.Context, employeeID string) ([]employee.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := false
	for _, emp := range r.employees {
		if emp.ID == employeeID {
			found = true
			break
		}
	}
	if !found {
		return nil, employee.ErrEmployeeNotFound
	}

	out := make([]employee.Asset, len(r.assets[employeeID]))
	copy(out, r.assets[employeeID])
	return out, nil
}
