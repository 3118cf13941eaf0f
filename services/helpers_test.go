package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"volunteer-portal-api/models"
)

func ctx() context.Context {
	return context.Background()
}

func newTestService() (*VolunteerService, *MemoryStore) {
	store := NewMemoryStore()
	svc := NewVolunteerService(store)
	return svc, store
}

func seedVolunteer(store *MemoryStore, id int, status models.Status, mutate ...func(*models.VolunteerApplication)) models.VolunteerApplication {
	record := models.VolunteerApplication{
		VolunteerID:    id,
		StudentID:      1000 + id,
		Unit:           "north-campus",
		Name:           fmt.Sprintf("Volunteer %d", id),
		RegistrationNo: fmt.Sprintf("REG-%03d", id),
		Phone:          fmt.Sprintf("04000000%02d", id),
		Email:          fmt.Sprintf("volunteer%d@example.edu", id),
		Course:         "BSc",
		Semester:       3,
		BloodGroup:     "O+",
		Status:         status,
		CreatedAt:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
		UpdatedAt:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
	}
	for _, fn := range mutate {
		fn(&record)
	}
	return store.Put(record)
}

func mustStatus(t *testing.T, store *MemoryStore, id int, want models.Status) {
	t.Helper()
	record, err := store.GetByID(ctx(), id)
	if err != nil {
		t.Fatalf("GetByID(%d): %v", id, err)
	}
	if record.Status != want {
		t.Fatalf("volunteer %d: status = %s, want %s", id, record.Status, want)
	}
}
