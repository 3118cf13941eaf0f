package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"volunteer-portal-api/models"
)

// MemoryStore is an in-memory VolunteerStore. It keeps the engine testable
// without a database and favors clarity over performance.
type MemoryStore struct {
	mu      sync.RWMutex
	nextID  int
	records map[int]models.VolunteerApplication
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, records: make(map[int]models.VolunteerApplication)}
}

// Put inserts or replaces a record, assigning an id when missing.
func (s *MemoryStore) Put(record models.VolunteerApplication) models.VolunteerApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record.VolunteerID == 0 {
		record.VolunteerID = s.nextID
	}
	if record.VolunteerID >= s.nextID {
		s.nextID = record.VolunteerID + 1
	}
	s.records[record.VolunteerID] = record
	return record
}

func matches(record *models.VolunteerApplication, c Criteria) bool {
	if record.DeleteAt != nil {
		return false
	}
	if len(c.IDs) > 0 {
		found := false
		for _, id := range c.IDs {
			if record.VolunteerID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if c.Status != "" && string(record.Status) != c.Status {
		return false
	}
	if c.Unit != "" && record.Unit != c.Unit {
		return false
	}
	if c.Course != "" && record.Course != c.Course {
		return false
	}
	if c.Semester != nil && record.Semester != *c.Semester {
		return false
	}
	if c.BloodGroup != "" && record.BloodGroup != c.BloodGroup {
		return false
	}
	if c.IsActive != nil && record.IsActive() != *c.IsActive {
		return false
	}
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(record.Name), needle) &&
			!strings.Contains(strings.ToLower(record.RegistrationNo), needle) &&
			!strings.Contains(strings.ToLower(record.Phone), needle) {
			return false
		}
	}
	if c.CreatedAfter != nil && record.CreatedAt.Before(*c.CreatedAfter) {
		return false
	}
	return true
}

func (s *MemoryStore) match(c Criteria) []models.VolunteerApplication {
	var out []models.VolunteerApplication
	for _, record := range s.records {
		if matches(&record, c) {
			out = append(out, record)
		}
	}
	return out
}

func (s *MemoryStore) GetByID(_ context.Context, id int) (*models.VolunteerApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok || record.DeleteAt != nil {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (s *MemoryStore) Query(_ context.Context, c Criteria) ([]models.VolunteerApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.match(c)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) CountWhere(_ context.Context, c Criteria) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.match(c))), nil
}

func (s *MemoryStore) CountDistinctUnits(_ context.Context, c Criteria) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	units := make(map[string]struct{})
	for _, record := range s.match(c) {
		units[record.Unit] = struct{}{}
	}
	return int64(len(units)), nil
}

func (s *MemoryStore) CountDistinctStudents(_ context.Context, c Criteria) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	students := make(map[int]struct{})
	for _, record := range s.match(c) {
		students[record.StudentID] = struct{}{}
	}
	return int64(len(students)), nil
}

func applyFields(record *models.VolunteerApplication, fields map[string]interface{}) {
	for column, value := range fields {
		switch column {
		case "status":
			switch v := value.(type) {
			case models.Status:
				record.Status = v
			case string:
				record.Status = models.Status(v)
			}
		case "updated_at":
			if t, ok := value.(time.Time); ok {
				record.UpdatedAt = t
			}
		case "enroll_no":
			switch v := value.(type) {
			case *string:
				record.EnrollNo = v
			case string:
				record.EnrollNo = &v
			case nil:
				record.EnrollNo = nil
			}
		case "name":
			if v, ok := value.(string); ok {
				record.Name = v
			}
		case "phone":
			if v, ok := value.(string); ok {
				record.Phone = v
			}
		case "semester":
			if v, ok := value.(int); ok {
				record.Semester = v
			}
		}
	}
}

func (s *MemoryStore) UpdateFields(_ context.Context, id int, fields map[string]interface{}) (*models.VolunteerApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok || record.DeleteAt != nil {
		return nil, ErrNotFound
	}
	applyFields(&record, fields)
	s.records[id] = record
	return &record, nil
}

func (s *MemoryStore) UpdateManyWhere(_ context.Context, ids []int, fields map[string]interface{}) ([]models.VolunteerApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var affected []models.VolunteerApplication
	for _, id := range ids {
		record, ok := s.records[id]
		if !ok || record.DeleteAt != nil {
			continue
		}
		applyFields(&record, fields)
		s.records[id] = record
		affected = append(affected, record)
	}
	return affected, nil
}

func (s *MemoryStore) DeleteByID(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok || record.DeleteAt != nil {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}
