package services

import (
	"volunteer-portal-api/models"
)

// unitStates are the states a unit actor may move an application between.
// Certification is admin-only in both directions.
var unitStates = map[models.Status]bool{
	models.StatusPending:  true,
	models.StatusApproved: true,
	models.StatusRejected: true,
}

// ValidateTransition decides whether role may move an application from
// current to requested. The stored record is never touched here; callers
// apply the update only after a nil return.
func ValidateTransition(role models.Role, current, requested models.Status) error {
	if !requested.IsValid() {
		return &InvalidTransitionError{Role: role, Current: current, Requested: requested}
	}

	switch role {
	case models.RoleUnit:
		// Units review freely among pending/approved/rejected but can
		// neither grant nor revoke certification.
		if unitStates[current] && unitStates[requested] {
			return nil
		}
	case models.RoleAdmin:
		if unitStates[current] && unitStates[requested] {
			return nil
		}
		// certify
		if requested == models.StatusCertified && current == models.StatusApproved {
			return nil
		}
		// uncertify
		if current == models.StatusCertified && requested == models.StatusApproved {
			return nil
		}
	}

	return &InvalidTransitionError{Role: role, Current: current, Requested: requested}
}
