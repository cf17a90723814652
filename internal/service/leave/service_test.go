package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aicorp/command-center-go/internal/domain/leave"
	"github.com/aicorp/command-center-go/internal/repository/memory"
)

func newTestService(seed ...leave.Request) leave.LeaveService {
	repo := memory.NewLeaveRequestRepository(seed)
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return NewLeaveServiceWithClock(repo, func() time.Time { return fixed })
}

func TestApplyCreatesPendingRequest(t *testing.T) {
	svc := newTestService()

	created, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeEmail: "m.chen@aicorp.com",
		Type:          "Annual",
		StartDate:     "2024-03-10",
		EndDate:       "2024-03-14",
		Reason:        "Spring break",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pending", created.Status)
	assert.Equal(t, 5, created.Days)
}

func TestApplyValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeEmail: "m.chen@aicorp.com",
		Type:          "Annual",
		StartDate:     "2024-03-14",
		EndDate:       "2024-03-10",
	})
	require.Error(t, err)

	_, err = svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeEmail: "m.chen@aicorp.com",
		Type:          "Sabbatical",
		StartDate:     "2024-03-10",
		EndDate:       "2024-03-14",
	})
	require.Error(t, err)
}

func TestApplyRejectsOverdrawnBalance(t *testing.T) {
	svc := newTestService()

	// 21 days against a 20-day annual allowance.
	_, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeEmail: "m.chen@aicorp.com",
		Type:          "Annual",
		StartDate:     "2024-03-01",
		EndDate:       "2024-03-21",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	// Unpaid leave has no allowance to overdraw.
	_, err = svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeEmail: "m.chen@aicorp.com",
		Type:          "Unpaid",
		StartDate:     "2024-03-01",
		EndDate:       "2024-04-30",
	})
	require.NoError(t, err)
}

func TestApproveAndReject(t *testing.T) {
	svc := newTestService()

	created, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeEmail: "m.chen@aicorp.com",
		Type:          "Sick",
		StartDate:     "2024-03-04",
		EndDate:       "2024-03-05",
		Reason:        "Flu",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), leave.DecideRequest{ID: created.ID, DecidedBy: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "Approved", approved.Status)
	require.NotNil(t, approved.DecidedBy)
	assert.Equal(t, "admin", *approved.DecidedBy)

	// A decided request cannot be decided again.
	_, err = svc.Reject(context.Background(), leave.DecideRequest{ID: created.ID, DecidedBy: "admin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, leave.ErrRequestAlreadyProcessed)

	_, err = svc.Approve(context.Background(), leave.DecideRequest{ID: "missing", DecidedBy: "admin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, leave.ErrRequestNotFound)
}

func TestBalanceCountsApprovedCurrentYearOnly(t *testing.T) {
	decided := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	admin := "admin"
	svc := newTestService(
		leave.Request{
			ID:            "lv-old",
			EmployeeEmail: "m.chen@aicorp.com",
			Type:          leave.TypeAnnual,
			StartDate:     time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2023, 7, 10, 0, 0, 0, 0, time.UTC),
			Status:        leave.RequestStatusApproved,
			DecidedBy:     &admin,
			DecidedAt:     &decided,
		},
		leave.Request{
			ID:            "lv-approved",
			EmployeeEmail: "m.chen@aicorp.com",
			Type:          leave.TypeAnnual,
			StartDate:     time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC),
			Status:        leave.RequestStatusApproved,
			DecidedBy:     &admin,
			DecidedAt:     &decided,
		},
		leave.Request{
			ID:            "lv-pending",
			EmployeeEmail: "m.chen@aicorp.com",
			Type:          leave.TypeAnnual,
			StartDate:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
			Status:        leave.RequestStatusPending,
		},
	)

	balance, err := svc.Balance(context.Background(), "m.chen@aicorp.com")
	require.NoError(t, err)
	assert.Equal(t, 20, balance.AnnualTotal)
	assert.Equal(t, 5, balance.AnnualUsed, "only approved current-year requests draw down")
	assert.Equal(t, 15, balance.AnnualRemaining)
}

func TestListFiltersByEmployee(t *testing.T) {
	svc := newTestService(
		leave.Request{ID: "lv1", EmployeeEmail: "a@aicorp.com", Type: leave.TypeAnnual, Status: leave.RequestStatusPending},
		leave.Request{ID: "lv2", EmployeeEmail: "b@aicorp.com", Type: leave.TypeSick, Status: leave.RequestStatusPending},
	)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	mine, err := svc.List(context.Background(), "a@aicorp.com")
	require.NoError(t, err)
	require.Equal(t, 1, mine.Total)
	assert.Equal(t, "lv1", mine.Requests[0].ID)
}
