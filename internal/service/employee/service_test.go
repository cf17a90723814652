package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aicorp/command-center-go/internal/domain/employee"
	"github.com/aicorp/command-center-go/internal/fixtures"
	"github.com/aicorp/command-center-go/internal/repository/memory"
)

func newTestService(repo employee.EmployeeRepository, now time.Time) employee.EmployeeService {
	return NewEmployeeServiceWithClock(repo, func() time.Time { return now })
}

func createReq() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:       "Dana Okafor",
		Email:      "d.okafor@aicorp.com",
		Department: "Engineering",
		Role:       "Platform Engineer",
		Status:     "Active",
	}
}

func TestCreateStampsCreatedAtFromClock(t *testing.T) {
	repo := memory.NewEmployeeRepository(nil, nil)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestService(repo, now)

	resp, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)

	stored, err := repo.GetByEmail(context.Background(), "d.okafor@aicorp.com")
	require.NoError(t, err)
	assert.Equal(t, now, stored.CreatedAt)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := memory.NewEmployeeRepository(fixtures.Employees(), nil)
	svc := newTestService(repo, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	req := createReq()
	req.Email = "e.reed@aicorp.com"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestCreateValidation(t *testing.T) {
	repo := memory.NewEmployeeRepository(nil, nil)
	svc := newTestService(repo, time.Now())

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:   "No Email",
		Status: "Retired",
	})
	require.Error(t, err)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Zero(t, list.Total, "invalid input must not reach the store")
}

func TestListAssetsUnknownEmployee(t *testing.T) {
	repo := memory.NewEmployeeRepository(fixtures.Employees(), fixtures.Assets())
	svc := newTestService(repo, time.Now())

	_, err := svc.ListAssets(context.Background(), "emp999")
	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
