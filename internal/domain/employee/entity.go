package employee

import (
	"time"
)

type Employee struct {
	ID         string
	Name       string
	Email      string
	Department string
	Role       string
	Status     Status
	AvatarURL  *string
	CreatedAt  time.Time
}

type Status string

const (
	StatusActive     Status = "Active"
	StatusOnLeave    Status = "On Leave"
	StatusTerminated Status = "Terminated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}

func StatusValues() []string {
	return []string{string(StatusActive), string(StatusOnLeave), string(StatusTerminated)}
}

// Asset is a piece of equipment assigned to an employee. Specifications are
// free-form key/value pairs.
type Asset struct {
	AssetID        string
	EmployeeID     string
	Type           AssetType
	Name           string
	Make           string
	Model          string
	SerialNumber   *string
	Specifications []AssetSpecification
	AssignedDate   time.Time
	PurchaseDate   *time.Time
}

type AssetSpecification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type AssetType string

const (
	AssetTypeLaptop     AssetType = "Laptop"
	AssetTypeMonitor    AssetType = "Monitor"
	AssetTypeMouse      AssetType = "Mouse"
	AssetTypeKeyboard   AssetType = "Keyboard"
	AssetTypeSmartphone AssetType = "Smartphone"
	AssetTypeOther      AssetType = "Other"
)
