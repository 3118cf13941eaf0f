package services

import (
	"context"
	"time"

	"volunteer-portal-api/models"
)

// recentWindow is the trailing registration window reported by the
// dashboards, measured from the moment of each call.
const recentWindow = 7 * 24 * time.Hour

// Stats is a snapshot of derived volunteer counts. Nothing here is cached;
// every field is recomputed from the store on each call.
type Stats struct {
	Total                    int64   `json:"total"`
	Pending                  int64   `json:"pending"`
	Approved                 int64   `json:"approved"`
	Rejected                 int64   `json:"rejected"`
	Certified                int64   `json:"certified"`
	UniqueUnits              int64   `json:"unique_units"`
	StudentsWithApplications int64   `json:"students_with_applications"`
	RecentCount              int64   `json:"recent_count"`
	ApprovalRate             float64 `json:"approval_rate"`
}

// computeStats runs the independent count queries behind a dashboard. An
// empty unit means the system-wide (admin) view; unit views skip the
// distinct-unit count since it is 1 by construction.
func (s *VolunteerService) computeStats(ctx context.Context, unit string) (*Stats, error) {
	base := Criteria{Unit: unit}
	stats := &Stats{}

	var err error
	if stats.Total, err = s.store.CountWhere(ctx, base); err != nil {
		return nil, storeErr("count total", err)
	}

	byStatus := map[models.Status]*int64{
		models.StatusPending:   &stats.Pending,
		models.StatusApproved:  &stats.Approved,
		models.StatusRejected:  &stats.Rejected,
		models.StatusCertified: &stats.Certified,
	}
	for _, status := range models.AllStatuses {
		c := base
		c.Status = string(status)
		count, err := s.store.CountWhere(ctx, c)
		if err != nil {
			return nil, storeErr("count "+string(status), err)
		}
		*byStatus[status] = count
	}

	if unit == "" {
		if stats.UniqueUnits, err = s.store.CountDistinctUnits(ctx, base); err != nil {
			return nil, storeErr("count units", err)
		}
	}

	if stats.StudentsWithApplications, err = s.store.CountDistinctStudents(ctx, base); err != nil {
		return nil, storeErr("count students", err)
	}

	since := s.now().Add(-recentWindow)
	recent := base
	recent.CreatedAfter = &since
	if stats.RecentCount, err = s.store.CountWhere(ctx, recent); err != nil {
		return nil, storeErr("count recent", err)
	}

	if stats.Total > 0 {
		stats.ApprovalRate = float64(stats.Approved) / float64(stats.Total)
	}

	return stats, nil
}
