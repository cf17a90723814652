package leave

import (
	"time"
)

type Request struct {
	ID            string
	EmployeeEmail string
	Type          Type
	StartDate     time.Time
	EndDate       time.Time
	Reason        string
	Status        RequestStatus
	DecidedBy     *string
	DecidedAt     *time.Time
	CreatedAt     time.Time
}

// Days returns the inclusive calendar-day length of the request.
func (r Request) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

type Type string

const (
	TypeAnnual Type = "Annual"
	TypeSick   Type = "Sick"
	TypeUnpaid Type = "Unpaid"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAnnual, TypeSick, TypeUnpaid:
		return true
	}
	return false
}

func TypeValues() []string {
	return []string{string(TypeAnnual), string(TypeSick), string(TypeUnpaid)}
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusRejected RequestStatus = "Rejected"
)

// Balance is the remaining allowance per leave type for one employee.
// Annual and sick leave draw down from fixed yearly allowances; unpaid
// leave is unlimited and only tracked.
type Balance struct {
	EmployeeEmail string
	AnnualTotal   int
	AnnualUsed    int
	SickTotal     int
	SickUsed      int
	UnpaidUsed    int
}

const (
	DefaultAnnualAllowance = 20
	DefaultSickAllowance   = 10
)
