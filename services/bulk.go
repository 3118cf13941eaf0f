package services

import (
	"context"
	"fmt"

	"volunteer-portal-api/models"
)

// BulkCertifyResult reports per-record outcomes of a bulk certification.
// A mix of successes and failures is a normal result, not an error.
type BulkCertifyResult struct {
	SuccessCount int      `json:"success_count"`
	FailedCount  int      `json:"failed_count"`
	Errors       []string `json:"errors"`
}

// bulkSetStatus unconditionally moves every existing record in ids to the
// target status. Ids that resolve to nothing shrink the returned count.
func (s *VolunteerService) bulkSetStatus(ctx context.Context, ids []int, target models.Status) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	affected, err := s.store.UpdateManyWhere(ctx, ids, map[string]interface{}{
		"status":     target,
		"updated_at": s.now(),
	})
	if err != nil {
		return 0, storeErr(fmt.Sprintf("bulk %s", target), err)
	}
	return len(affected), nil
}

// bulkCertify certifies the approved subset of ids and reports the rest as
// per-record failures. The read-partition-write sequence is deliberately not
// wrapped in a transaction; see the documented concurrency contract.
func (s *VolunteerService) bulkCertify(ctx context.Context, ids []int) (*BulkCertifyResult, error) {
	if len(ids) == 0 {
		return nil, ErrNoRecords
	}

	records, err := s.store.Query(ctx, Criteria{IDs: ids})
	if err != nil {
		return nil, storeErr("bulk certify read", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	result := &BulkCertifyResult{}
	var eligible []int
	for i := range records {
		record := &records[i]
		if record.Status == models.StatusApproved {
			eligible = append(eligible, record.VolunteerID)
			continue
		}
		result.FailedCount++
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s (%s): Cannot certify - must be approved first", record.Name, record.Status))
	}

	if len(eligible) > 0 {
		certified, err := s.store.UpdateManyWhere(ctx, eligible, map[string]interface{}{
			"status":     models.StatusCertified,
			"updated_at": s.now(),
		})
		if err != nil {
			return nil, storeErr("bulk certify write", err)
		}
		result.SuccessCount = len(certified)
	}

	return result, nil
}
