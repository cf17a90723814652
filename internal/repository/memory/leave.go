package memory

import (
	"context"
	"sync"

	"github.com/aicorp/command-center-go/internal/domain/leave"
)

type LeaveRequestRepository struct {
	mu       sync.RWMutex
	requests []leave.Request
}

func NewLeaveRequestRepository(seed []leave.Request) *LeaveRequestRepository {
	return &LeaveRequestRepository{
		requests: append([]leave.Request(nil), seed...),
	}
}

func (r *LeaveRequestRepository) List(ctx context.Context) ([]leave.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]leave.Request, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *LeaveRequestRepository) ListByEmployee(ctx context.Context, employeeEmail string) ([]leave.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []leave.Request
	for _, req := range r.requests {
		if req.EmployeeEmail == employeeEmail {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return leave.Request{}, leave.ErrRequestNotFound
}

func (r *LeaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Newest first, matching the console's list order.
	r.requests = append([]leave.Request{req}, r.requests...)
	return req, nil
}

func (r *LeaveRequestRepository) Update(ctx context.Context, req leave.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID == req.ID {
			r.requests[i] = req
			return nil
		}
	}
	return leave.ErrRequestNotFound
}
