package services

import (
	"context"
	"time"

	"volunteer-portal-api/models"
)

// Criteria is the set of optional constraints a volunteer query may carry.
// Zero values (and the literal "all") mean "no constraint on this field".
type Criteria struct {
	IDs        []int
	Status     string
	Unit       string
	Course     string
	Semester   *int
	BloodGroup string
	IsActive   *bool
	// Search matches case-insensitively against name, registration number
	// or phone, ORed together and ANDed with every other constraint.
	Search string
	// CreatedAfter restricts to records created at or after the given time.
	CreatedAfter *time.Time
}

// VolunteerStore is the persistence port the engine runs against. The GORM
// adapter backs it in production; tests inject MemoryStore.
type VolunteerStore interface {
	// GetByID returns the record or ErrNotFound.
	GetByID(ctx context.Context, id int) (*models.VolunteerApplication, error)

	// Query returns matching records ordered by created_at descending.
	Query(ctx context.Context, c Criteria) ([]models.VolunteerApplication, error)

	// CountWhere counts matching records without transferring rows.
	CountWhere(ctx context.Context, c Criteria) (int64, error)

	// CountDistinctUnits counts distinct unit identifiers among matches.
	CountDistinctUnits(ctx context.Context, c Criteria) (int64, error)

	// CountDistinctStudents counts distinct owning students among matches.
	CountDistinctStudents(ctx context.Context, c Criteria) (int64, error)

	// UpdateFields applies a partial update to one record and returns the
	// updated row, or ErrNotFound.
	UpdateFields(ctx context.Context, id int, fields map[string]interface{}) (*models.VolunteerApplication, error)

	// UpdateManyWhere applies the same partial update to every existing
	// record in ids and returns the affected rows. Missing ids are skipped.
	UpdateManyWhere(ctx context.Context, ids []int, fields map[string]interface{}) ([]models.VolunteerApplication, error)

	// DeleteByID removes one record, or returns ErrNotFound.
	DeleteByID(ctx context.Context, id int) error
}
