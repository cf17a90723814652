package leave

import (
	"context"
)

type LeaveService interface {
	// Apply submits a new leave request in Pending state. Annual and sick
	// requests exceeding the remaining balance are rejected up front.
	Apply(ctx context.Context, req ApplyRequest) (RequestResponse, error)

	List(ctx context.Context, employeeEmail string) (ListRequestsResponse, error)

	Approve(ctx context.Context, req DecideRequest) (RequestResponse, error)
	Reject(ctx context.Context, req DecideRequest) (RequestResponse, error)

	// Balance derives the per-type allowance usage from approved requests.
	Balance(ctx context.Context, employeeEmail string) (BalanceResponse, error)
}
