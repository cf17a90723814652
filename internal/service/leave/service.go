package leave

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aicorp/command-center-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	repo leave.RequestRepository
	now  func() time.Time
}

func NewLeaveService(repo leave.RequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

// NewLeaveServiceWithClock injects the clock for tests.
func NewLeaveServiceWithClock(repo leave.RequestRepository, now func() time.Time) leave.LeaveService {
	return &LeaveServiceImpl{
		repo: repo,
		now:  now,
	}
}

func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	// Validate() already proved the formats.
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	request := leave.Request{
		ID:            uuid.New().String(),
		EmployeeEmail: req.EmployeeEmail,
		Type:          leave.Type(req.Type),
		StartDate:     start,
		EndDate:       end,
		Reason:        req.Reason,
		Status:        leave.RequestStatusPending,
		CreatedAt:     s.now(),
	}

	balance, err := s.balanceFor(ctx, req.EmployeeEmail)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	switch request.Type {
	case leave.TypeAnnual:
		if balance.AnnualUsed+request.Days() > balance.AnnualTotal {
			return leave.RequestResponse{}, leave.ErrInsufficientBalance
		}
	case leave.TypeSick:
		if balance.SickUsed+request.Days() > balance.SickTotal {
			return leave.RequestResponse{}, leave.ErrInsufficientBalance
		}
	}

	created, err := s.repo.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	return leave.ToRequestResponse(created), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, employeeEmail string) (leave.ListRequestsResponse, error) {
	var (
		requests []leave.Request
		err      error
	)
	if employeeEmail != "" {
		requests, err = s.repo.ListByEmployee(ctx, employeeEmail)
	} else {
		requests, err = s.repo.List(ctx)
	}
	if err != nil {
		return leave.ListRequestsResponse{}, err
	}

	resp := leave.ListRequestsResponse{
		Requests: make([]leave.RequestResponse, 0, len(requests)),
		Total:    len(requests),
	}
	for _, request := range requests {
		resp.Requests = append(resp.Requests, leave.ToRequestResponse(request))
	}
	return resp, nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecideRequest) (leave.RequestResponse, error) {
	return s.decide(ctx, req, leave.RequestStatusApproved)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecideRequest) (leave.RequestResponse, error) {
	return s.decide(ctx, req, leave.RequestStatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideRequest, status leave.RequestStatus) (leave.RequestResponse, error) {
	request, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if request.Status != leave.RequestStatusPending {
		return leave.RequestResponse{}, leave.ErrRequestAlreadyProcessed
	}

	now := s.now()
	request.Status = status
	request.DecidedBy = &req.DecidedBy
	request.DecidedAt = &now

	if err := s.repo.Update(ctx, request); err != nil {
		return leave.RequestResponse{}, err
	}
	return leave.ToRequestResponse(request), nil
}

func (s *LeaveServiceImpl) Balance(ctx context.Context, employeeEmail string) (leave.BalanceResponse, error) {
	balance, err := s.balanceFor(ctx, employeeEmail)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	return leave.ToBalanceResponse(balance), nil
}

// balanceFor derives usage from approved requests within the current
// calendar year.
func (s *LeaveServiceImpl) balanceFor(ctx context.Context, employeeEmail string) (leave.Balance, error) {
	requests, err := s.repo.ListByEmployee(ctx, employeeEmail)
	if err != nil {
		return leave.Balance{}, err
	}

	year := s.now().Year()
	balance := leave.Balance{
		EmployeeEmail: employeeEmail,
		AnnualTotal:   leave.DefaultAnnualAllowance,
		SickTotal:     leave.DefaultSickAllowance,
	}
	for _, request := range requests {
		if request.Status != leave.RequestStatusApproved || request.StartDate.Year() != year {
			continue
		}
		switch request.Type {
		case leave.TypeAnnual:
			balance.AnnualUsed += request.Days()
		case leave.TypeSick:
			balance.SickUsed += request.Days()
		case leave.TypeUnpaid:
			balance.UnpaidUsed += request.Days()
		}
	}
	return balance, nil
}
