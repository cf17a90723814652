package attendance

import (
	"time"
)

// Status is the closed set of attendance states. Records are compared
// against this enum everywhere; anything outside it never enters the list.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusOnLeave Status = "On Leave"
	StatusHalfDay Status = "Half Day"
)

// Valid reports whether s is one of the known attendance statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusOnLeave, StatusHalfDay:
		return true
	}
	return false
}

// StatusValues returns the known statuses as plain strings, for validation
// messages and request checks.
func StatusValues() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusOnLeave),
		string(StatusHalfDay),
	}
}

// Record is a single attendance entry. Date carries no time-of-day component;
// it is normalized to midnight UTC before the record enters the repository.
// The employee email is the employee key; duplicate (email, date) pairs are
// permitted and all are counted.
type Record struct {
	ID            string
	EmployeeEmail string
	Date          time.Time
	Status        Status
	CreatedAt     time.Time
}

// NormalizeDate strips the time-of-day and location from t.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
