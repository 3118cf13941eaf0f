package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"volunteer-portal-api/models"
)

func TestBulkApproveUnconditional(t *testing.T) {
	svc, store := newTestService()
	admin := NewAdminVolunteerService(svc)

	seedVolunteer(store, 1, models.StatusPending)
	seedVolunteer(store, 2, models.StatusPending)
	seedVolunteer(store, 3, models.StatusApproved)

	count, err := admin.BulkApprove(ctx(), []int{1, 2, 3})
	if err != nil {
		t.Fatalf("BulkApprove: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
	for _, id := range []int{1, 2, 3} {
		mustStatus(t, store, id, models.StatusApproved)
	}
}

func TestBulkRejectSkipsMissingIDs(t *testing.T) {
	svc, store := newTestService()
	admin := NewAdminVolunteerService(svc)

	seedVolunteer(store, 1, models.StatusApproved)
	seedVolunteer(store, 2, models.StatusCertified)

	count, err := admin.BulkReject(ctx(), []int{1, 2, 99})
	if err != nil {
		t.Fatalf("BulkReject: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2 (missing id shrinks the count)", count)
	}
	mustStatus(t, store, 1, models.StatusRejected)
	mustStatus(t, store, 2, models.StatusRejected)
}

func TestBulkCertifyPartialFailure(t *testing.T) {
	svc, store := newTestService()
	admin := NewAdminVolunteerService(svc)

	seedVolunteer(store, 1, models.StatusApproved)
	seedVolunteer(store, 2, models.StatusPending)

	result, err := admin.BulkCertify(ctx(), []int{1, 2})
	if err != nil {
		t.Fatalf("BulkCertify: %v", err)
	}

	if result.SuccessCount != 1 {
		t.Errorf("SuccessCount = %d, want 1", result.SuccessCount)
	}
	if result.FailedCount != 1 {
		t.Errorf("FailedCount = %d, want 1", result.FailedCount)
	}
	if len(result.Errors) != result.FailedCount {
		t.Errorf("len(Errors) = %d, want %d", len(result.Errors), result.FailedCount)
	}
	if len(result.Errors) == 1 {
		msg := result.Errors[0]
		if !strings.Contains(msg, "(pending)") || !strings.Contains(msg, "Cannot certify - must be approved first") {
			t.Errorf("error message = %q, want disqualifying status named", msg)
		}
	}

	mustStatus(t, store, 1, models.StatusCertified)
	mustStatus(t, store, 2, models.StatusPending)
}

func TestBulkCertifyCountsCoverResolvedRecords(t *testing.T) {
	svc, store := newTestService()
	admin := NewAdminVolunteerService(svc)

	seedVolunteer(store, 1, models.StatusApproved)
	seedVolunteer(store, 2, models.StatusRejected)
	seedVolunteer(store, 3, models.StatusCertified)
	seedVolunteer(store, 4, models.StatusApproved)

	// id 42 does not exist and must not count as a failure
	result, err := admin.BulkCertify(ctx(), []int{1, 2, 3, 4, 42})
	if err != nil {
		t.Fatalf("BulkCertify: %v", err)
	}

	resolved := 4
	if result.SuccessCount+result.FailedCount != resolved {
		t.Errorf("success %d + failed %d != resolved %d",
			result.SuccessCount, result.FailedCount, resolved)
	}
	if result.SuccessCount != 2 {
		t.Errorf("SuccessCount = %d, want 2", result.SuccessCount)
	}
}

func TestBulkCertifyNoRecordsFound(t *testing.T) {
	svc, store := newTestService()
	admin := NewAdminVolunteerService(svc)

	seedVolunteer(store, 1, models.StatusApproved)

	_, err := admin.BulkCertify(ctx(), []int{55, 56})
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("err = %v, want ErrNoRecords", err)
	}
	mustStatus(t, store, 1, models.StatusApproved)

	if _, err := admin.BulkCertify(ctx(), nil); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("empty id list: err = %v, want ErrNoRecords", err)
	}
}

func TestBulkOperationsRefreshUpdatedAt(t *testing.T) {
	svc, store := newTestService()
	admin := NewAdminVolunteerService(svc)

	frozen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	seedVolunteer(store, 1, models.StatusPending)

	if _, err := admin.BulkApprove(ctx(), []int{1}); err != nil {
		t.Fatalf("BulkApprove: %v", err)
	}

	record, err := store.GetByID(ctx(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !record.UpdatedAt.Equal(frozen) {
		t.Errorf("UpdatedAt = %v, want %v", record.UpdatedAt, frozen)
	}
}
