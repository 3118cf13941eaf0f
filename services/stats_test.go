package services

import (
	"testing"
	"time"

	"volunteer-portal-api/models"
)

func TestComputeStatsEmptyDataset(t *testing.T) {
	svc, _ := newTestService()
	admin := NewAdminVolunteerService(svc)

	stats, err := admin.Stats(ctx())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.Total != 0 || stats.Pending != 0 || stats.Approved != 0 ||
		stats.Rejected != 0 || stats.Certified != 0 ||
		stats.UniqueUnits != 0 || stats.StudentsWithApplications != 0 ||
		stats.RecentCount != 0 {
		t.Errorf("expected all-zero stats, got %+v", stats)
	}
	if stats.ApprovalRate != 0 {
		t.Errorf("ApprovalRate = %v, want 0 on empty dataset", stats.ApprovalRate)
	}
}

func TestComputeStatsCountsAndRate(t *testing.T) {
	svc, store := newTestService()
	admin := NewAdminVolunteerService(svc)

	seedVolunteer(store, 1, models.StatusPending)
	seedVolunteer(store, 2, models.StatusApproved)
	seedVolunteer(store, 3, models.StatusApproved)
	seedVolunteer(store, 4, models.StatusRejected)
	seedVolunteer(store, 5, models.StatusCertified)

	stats, err := admin.Stats(ctx())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.Total != 5 {
		t.Errorf("Total = %d, want 5", stats.Total)
	}
	if stats.Pending != 1 || stats.Approved != 2 || stats.Rejected != 1 || stats.Certified != 1 {
		t.Errorf("status counts = %d/%d/%d/%d, want 1/2/1/1",
			stats.Pending, stats.Approved, stats.Rejected, stats.Certified)
	}
	if want := 2.0 / 5.0; stats.ApprovalRate != want {
		t.Errorf("ApprovalRate = %v, want %v", stats.ApprovalRate, want)
	}
}

func TestComputeStatsDistinctStudents(t *testing.T) {
	svc, store := newTestService()
	admin := NewAdminVolunteerService(svc)

	// 10 applications from 3 students
	owners := []int{7, 7, 7, 8, 8, 9, 9, 9, 9, 7}
	for i, owner := range owners {
		student := owner
		seedVolunteer(store, i+1, models.StatusPending, func(v *models.VolunteerApplication) {
			v.StudentID = student
		})
	}

	stats, err := admin.Stats(ctx())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 10 {
		t.Errorf("Total = %d, want 10", stats.Total)
	}
	if stats.StudentsWithApplications != 3 {
		t.Errorf("StudentsWithApplications = %d, want 3", stats.StudentsWithApplications)
	}
}

func TestComputeStatsUniqueUnits(t *testing.T) {
	svc, store := newTestService()
	admin := NewAdminVolunteerService(svc)

	units := []string{"north-campus", "south-campus", "north-campus", "city-campus"}
	for i, unit := range units {
		u := unit
		seedVolunteer(store, i+1, models.StatusPending, func(v *models.VolunteerApplication) { v.Unit = u })
	}

	stats, err := admin.Stats(ctx())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.UniqueUnits != 3 {
		t.Errorf("UniqueUnits = %d, want 3", stats.UniqueUnits)
	}
}

func TestComputeStatsRecentWindow(t *testing.T) {
	svc, store := newTestService()
	admin := NewAdminVolunteerService(svc)

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	seedVolunteer(store, 1, models.StatusPending, func(v *models.VolunteerApplication) {
		v.CreatedAt = now.Add(-2 * 24 * time.Hour) // inside the window
	})
	seedVolunteer(store, 2, models.StatusPending, func(v *models.VolunteerApplication) {
		v.CreatedAt = now.Add(-6 * 24 * time.Hour) // inside
	})
	seedVolunteer(store, 3, models.StatusPending, func(v *models.VolunteerApplication) {
		v.CreatedAt = now.Add(-8 * 24 * time.Hour) // outside
	})

	stats, err := admin.Stats(ctx())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.RecentCount != 2 {
		t.Errorf("RecentCount = %d, want 2", stats.RecentCount)
	}

	// The window trails the clock, not the calendar: move time forward and
	// the oldest in-window record falls out.
	svc.now = func() time.Time { return now.Add(2 * 24 * time.Hour) }
	stats, err = admin.Stats(ctx())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.RecentCount != 1 {
		t.Errorf("RecentCount after advancing clock = %d, want 1", stats.RecentCount)
	}
}

func TestComputeStatsUnitScoped(t *testing.T) {
	svc, store := newTestService()

	seedVolunteer(store, 1, models.StatusApproved) // north-campus
	seedVolunteer(store, 2, models.StatusPending)  // north-campus
	seedVolunteer(store, 3, models.StatusApproved, func(v *models.VolunteerApplication) {
		v.Unit = "south-campus"
	})

	unit := NewUnitVolunteerService(svc, "north-campus")
	stats, err := unit.Stats(ctx())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 2 {
		t.Errorf("Total = %d, want 2 (own unit only)", stats.Total)
	}
	if stats.Approved != 1 || stats.Pending != 1 {
		t.Errorf("unit counts = approved %d / pending %d, want 1/1", stats.Approved, stats.Pending)
	}
	if want := 1.0 / 2.0; stats.ApprovalRate != want {
		t.Errorf("ApprovalRate = %v, want %v", stats.ApprovalRate, want)
	}
}
