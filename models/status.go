package models

import "fmt"

// Status is the review state of a volunteer application.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCertified Status = "certified"
)

// AllStatuses lists every valid status value.
var AllStatuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusCertified}

// IsValid reports whether s is one of the four recognized states.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCertified:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus validates a raw status string at the boundary.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid status '%s'", raw)
	}
	return s, nil
}

// Role identifies the kind of actor driving a status change.
type Role int

const (
	// RoleUnit is a unit (chapter) coordinator, scoped to one unit.
	RoleUnit Role = 1
	// RoleAdmin is a system-wide administrator.
	RoleAdmin Role = 3
)

func (r Role) String() string {
	switch r {
	case RoleUnit:
		return "unit"
	case RoleAdmin:
		return "admin"
	}
	return fmt.Sprintf("role(%d)", int(r))
}
