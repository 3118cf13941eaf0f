package services

import (
	"testing"
	"time"

	"volunteer-portal-api/models"
)

func TestBuildCriteriaAllSentinel(t *testing.T) {
	c, err := BuildCriteria(FilterParams{Status: "all", Unit: "ALL", Semester: ""})
	if err != nil {
		t.Fatalf("BuildCriteria: %v", err)
	}
	if c.Status != "" || c.Unit != "" || c.Semester != nil {
		t.Errorf("expected unconstrained criteria, got %+v", c)
	}
}

func TestBuildCriteriaRejectsBadValues(t *testing.T) {
	if _, err := BuildCriteria(FilterParams{Status: "archived"}); err == nil {
		t.Error("expected error for unknown status")
	}
	if _, err := BuildCriteria(FilterParams{Semester: "zero"}); err == nil {
		t.Error("expected error for non-numeric semester")
	}
	if _, err := BuildCriteria(FilterParams{Semester: "-1"}); err == nil {
		t.Error("expected error for non-positive semester")
	}
	if _, err := BuildCriteria(FilterParams{IsActive: "maybe"}); err == nil {
		t.Error("expected error for bad is_active")
	}
}

func TestListDefaultOrderNewestFirst(t *testing.T) {
	svc, store := newTestService()

	// seeded created_at grows with id, so newest-first means descending ids
	for id := 1; id <= 5; id++ {
		seedVolunteer(store, id, models.StatusPending)
	}

	records, err := svc.List(ctx(), Criteria{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("len = %d, want 5", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.After(records[i-1].CreatedAt) {
			t.Fatalf("records out of order at %d: %v after %v",
				i, records[i].CreatedAt, records[i-1].CreatedAt)
		}
	}
}

func TestListCombinedCriteria(t *testing.T) {
	svc, store := newTestService()

	seedVolunteer(store, 1, models.StatusApproved) // semester 3
	seedVolunteer(store, 2, models.StatusApproved, func(v *models.VolunteerApplication) { v.Semester = 5 })
	seedVolunteer(store, 3, models.StatusPending)
	seedVolunteer(store, 4, models.StatusCertified)
	seedVolunteer(store, 5, models.StatusApproved)

	semester := 3
	records, err := svc.List(ctx(), Criteria{Status: "approved", Semester: &semester})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	for _, record := range records {
		if record.Status != models.StatusApproved || record.Semester != 3 {
			t.Errorf("record %d does not match both criteria", record.VolunteerID)
		}
	}
	// newest first within matches
	if records[0].VolunteerID != 5 || records[1].VolunteerID != 1 {
		t.Errorf("order = [%d %d], want [5 1]", records[0].VolunteerID, records[1].VolunteerID)
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	svc, store := newTestService()

	seedVolunteer(store, 1, models.StatusPending, func(v *models.VolunteerApplication) {
		v.Name = "Aisha Rahman"
		v.RegistrationNo = "VOL-2026-001"
		v.Phone = "0411222333"
	})
	seedVolunteer(store, 2, models.StatusPending, func(v *models.VolunteerApplication) {
		v.Name = "Bashir Uddin"
		v.RegistrationNo = "VOL-2026-002"
		v.Phone = "0499888777"
	})

	cases := []struct {
		search string
		want   []int
	}{
		{"aisha", []int{1}},      // name, lowercased
		{"RAHMAN", []int{1}},     // name, uppercased
		{"2026-002", []int{2}},   // registration number fragment
		{"99888", []int{2}},      // phone fragment
		{"vol-2026", []int{2, 1}}, // both, newest first
	}

	for _, tc := range cases {
		records, err := svc.List(ctx(), Criteria{Search: tc.search})
		if err != nil {
			t.Fatalf("List(search=%q): %v", tc.search, err)
		}
		if len(records) != len(tc.want) {
			t.Fatalf("search %q: len = %d, want %d", tc.search, len(records), len(tc.want))
		}
		for i, id := range tc.want {
			if records[i].VolunteerID != id {
				t.Errorf("search %q: records[%d] = %d, want %d", tc.search, i, records[i].VolunteerID, id)
			}
		}
	}
}

func TestSearchCombinesWithOtherCriteria(t *testing.T) {
	svc, store := newTestService()

	seedVolunteer(store, 1, models.StatusApproved, func(v *models.VolunteerApplication) { v.Name = "Aisha Rahman" })
	seedVolunteer(store, 2, models.StatusPending, func(v *models.VolunteerApplication) { v.Name = "Aisha Begum" })

	records, err := svc.List(ctx(), Criteria{Status: "approved", Search: "aisha"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 || records[0].VolunteerID != 1 {
		t.Fatalf("search must AND with status filter, got %d records", len(records))
	}
}

func TestIsActiveMapsToApprovedStatus(t *testing.T) {
	svc, store := newTestService()

	seedVolunteer(store, 1, models.StatusApproved)
	seedVolunteer(store, 2, models.StatusPending)
	seedVolunteer(store, 3, models.StatusCertified)

	active := true
	records, err := svc.List(ctx(), Criteria{IsActive: &active})
	if err != nil {
		t.Fatalf("List(active): %v", err)
	}
	if len(records) != 1 || records[0].VolunteerID != 1 {
		t.Fatalf("is_active=true must return only approved records")
	}

	inactive := false
	records, err = svc.List(ctx(), Criteria{IsActive: &inactive})
	if err != nil {
		t.Fatalf("List(inactive): %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("is_active=false: len = %d, want 2", len(records))
	}
}

func TestListExcludesSoftDeleted(t *testing.T) {
	svc, store := newTestService()

	seedVolunteer(store, 1, models.StatusPending)
	deleted := time.Now()
	seedVolunteer(store, 2, models.StatusPending, func(v *models.VolunteerApplication) { v.DeleteAt = &deleted })

	records, err := svc.List(ctx(), Criteria{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 || records[0].VolunteerID != 1 {
		t.Fatalf("soft-deleted records must not be visible")
	}
}
