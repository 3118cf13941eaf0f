package services

import (
	"errors"
	"fmt"

	"volunteer-portal-api/models"
)

var (
	// ErrNotFound is returned when a referenced volunteer record does not exist.
	ErrNotFound = errors.New("volunteer record not found")

	// ErrNoRecords is returned by bulk certification when none of the
	// requested ids resolved to an existing record.
	ErrNoRecords = errors.New("no records found")

	// ErrScopeViolation is returned when a unit-scoped caller targets a
	// record or filter outside its own unit.
	ErrScopeViolation = errors.New("record belongs to a different unit")
)

// InvalidTransitionError reports a status change the actor is not allowed to
// make. Current carries the stored status for diagnostics.
type InvalidTransitionError struct {
	Role      models.Role
	Current   models.Status
	Requested models.Status
}

func (e *InvalidTransitionError) Error() string {
	if e.Current == models.StatusCertified && e.Role == models.RoleUnit {
		return fmt.Sprintf("certified records can only be changed by an admin (current status: %s)", e.Current)
	}
	return fmt.Sprintf("cannot change status from '%s' to '%s' as %s", e.Current, e.Requested, e.Role)
}

// storeErr wraps a persistence failure with the operation that hit it.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: store operation failed: %w", op, err)
}
