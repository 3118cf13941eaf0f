package services

import (
	"context"
	"errors"
	"time"

	"volunteer-portal-api/models"
)

// VolunteerService is the shared application-lifecycle engine. It is not
// role-aware on its own; the Admin and Unit façades decide which operations
// a caller may reach and with what scope.
type VolunteerService struct {
	store VolunteerStore
	now   func() time.Time
}

func NewVolunteerService(store VolunteerStore) *VolunteerService {
	return &VolunteerService{store: store, now: time.Now}
}

// Get returns one record or ErrNotFound.
func (s *VolunteerService) Get(ctx context.Context, id int) (*models.VolunteerApplication, error) {
	return s.store.GetByID(ctx, id)
}

// SetStatus applies one role-checked status transition. The record is
// untouched when the transition is invalid.
func (s *VolunteerService) SetStatus(ctx context.Context, role models.Role, id int, requested models.Status) (*models.VolunteerApplication, error) {
	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(role, record.Status, requested); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateFields(ctx, id, map[string]interface{}{
		"status":     requested,
		"updated_at": s.now(),
	})
	if err != nil {
		return nil, storeErr("update status", err)
	}
	return updated, nil
}

// Delete permanently removes a record. This bypasses the state machine and
// cannot be undone; only the admin façade exposes it.
func (s *VolunteerService) Delete(ctx context.Context, id int) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return storeErr("delete volunteer", err)
	}
	return nil
}

// AdminVolunteerService is the system-wide façade: unrestricted reads,
// bulk operations, certification and deletion.
type AdminVolunteerService struct {
	svc *VolunteerService
}

func NewAdminVolunteerService(svc *VolunteerService) *AdminVolunteerService {
	return &AdminVolunteerService{svc: svc}
}

func (a *AdminVolunteerService) List(ctx context.Context, c Criteria) ([]models.VolunteerApplication, error) {
	return a.svc.List(ctx, c)
}

func (a *AdminVolunteerService) Get(ctx context.Context, id int) (*models.VolunteerApplication, error) {
	return a.svc.Get(ctx, id)
}

func (a *AdminVolunteerService) SetStatus(ctx context.Context, id int, requested models.Status) (*models.VolunteerApplication, error) {
	return a.svc.SetStatus(ctx, models.RoleAdmin, id, requested)
}

// Certify moves an approved application to certified.
func (a *AdminVolunteerService) Certify(ctx context.Context, id int) (*models.VolunteerApplication, error) {
	return a.svc.SetStatus(ctx, models.RoleAdmin, id, models.StatusCertified)
}

// Uncertify reverts a certified application to approved. A record that is
// not currently certified has no certification to revoke, so anything else
// is rejected even where a plain approved re-review would be legal.
func (a *AdminVolunteerService) Uncertify(ctx context.Context, id int) (*models.VolunteerApplication, error) {
	record, err := a.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Status != models.StatusCertified {
		return nil, &InvalidTransitionError{
			Role:      models.RoleAdmin,
			Current:   record.Status,
			Requested: models.StatusApproved,
		}
	}
	return a.svc.SetStatus(ctx, models.RoleAdmin, id, models.StatusApproved)
}

func (a *AdminVolunteerService) BulkApprove(ctx context.Context, ids []int) (int, error) {
	return a.svc.bulkSetStatus(ctx, ids, models.StatusApproved)
}

func (a *AdminVolunteerService) BulkReject(ctx context.Context, ids []int) (int, error) {
	return a.svc.bulkSetStatus(ctx, ids, models.StatusRejected)
}

func (a *AdminVolunteerService) BulkCertify(ctx context.Context, ids []int) (*BulkCertifyResult, error) {
	return a.svc.bulkCertify(ctx, ids)
}

func (a *AdminVolunteerService) Delete(ctx context.Context, id int) error {
	return a.svc.Delete(ctx, id)
}

func (a *AdminVolunteerService) Stats(ctx context.Context) (*Stats, error) {
	return a.svc.computeStats(ctx, "")
}

// UnitVolunteerService is the unit-scoped façade. Every read and write is
// forced to the caller's own unit; certification and deletion do not exist
// at this level.
type UnitVolunteerService struct {
	svc  *VolunteerService
	unit string
}

func NewUnitVolunteerService(svc *VolunteerService, unit string) *UnitVolunteerService {
	return &UnitVolunteerService{svc: svc, unit: unit}
}

// Unit returns the scope this façade is bound to.
func (u *UnitVolunteerService) Unit() string {
	return u.unit
}

// List rejects criteria naming a different unit instead of silently
// rescoping them.
func (u *UnitVolunteerService) List(ctx context.Context, c Criteria) ([]models.VolunteerApplication, error) {
	if c.Unit != "" && c.Unit != u.unit {
		return nil, ErrScopeViolation
	}
	c.Unit = u.unit
	return u.svc.List(ctx, c)
}

func (u *UnitVolunteerService) Get(ctx context.Context, id int) (*models.VolunteerApplication, error) {
	record, err := u.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Unit != u.unit {
		return nil, ErrScopeViolation
	}
	return record, nil
}

func (u *UnitVolunteerService) SetStatus(ctx context.Context, id int, requested models.Status) (*models.VolunteerApplication, error) {
	if _, err := u.Get(ctx, id); err != nil {
		return nil, err
	}
	return u.svc.SetStatus(ctx, models.RoleUnit, id, requested)
}

func (u *UnitVolunteerService) Stats(ctx context.Context) (*Stats, error) {
	return u.svc.computeStats(ctx, u.unit)
}
