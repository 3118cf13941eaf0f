package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"volunteer-portal-api/models"
)

// GormVolunteerStore backs VolunteerStore with the MySQL database.
type GormVolunteerStore struct {
	db *gorm.DB
}

func NewGormVolunteerStore(db *gorm.DB) *GormVolunteerStore {
	return &GormVolunteerStore{db: db}
}

func (s *GormVolunteerStore) scope(ctx context.Context, c Criteria) *gorm.DB {
	q := s.db.WithContext(ctx).
		Model(&models.VolunteerApplication{}).
		Where("delete_at IS NULL")

	if len(c.IDs) > 0 {
		q = q.Where("volunteer_id IN ?", c.IDs)
	}
	if c.Status != "" {
		q = q.Where("status = ?", c.Status)
	}
	if c.Unit != "" {
		q = q.Where("unit = ?", c.Unit)
	}
	if c.Course != "" {
		q = q.Where("course = ?", c.Course)
	}
	if c.Semester != nil {
		q = q.Where("semester = ?", *c.Semester)
	}
	if c.BloodGroup != "" {
		q = q.Where("blood_group = ?", c.BloodGroup)
	}
	if c.IsActive != nil {
		if *c.IsActive {
			q = q.Where("status = ?", models.StatusApproved)
		} else {
			q = q.Where("status <> ?", models.StatusApproved)
		}
	}
	if c.Search != "" {
		needle := "%" + strings.ToLower(c.Search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(registration_no) LIKE ? OR LOWER(phone) LIKE ?",
			needle, needle, needle,
		)
	}
	if c.CreatedAfter != nil {
		q = q.Where("created_at >= ?", *c.CreatedAfter)
	}
	return q
}

func (s *GormVolunteerStore) GetByID(ctx context.Context, id int) (*models.VolunteerApplication, error) {
	var record models.VolunteerApplication
	err := s.db.WithContext(ctx).
		Where("volunteer_id = ? AND delete_at IS NULL", id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *GormVolunteerStore) Query(ctx context.Context, c Criteria) ([]models.VolunteerApplication, error) {
	var records []models.VolunteerApplication
	if err := s.scope(ctx, c).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormVolunteerStore) CountWhere(ctx context.Context, c Criteria) (int64, error) {
	var count int64
	if err := s.scope(ctx, c).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormVolunteerStore) CountDistinctUnits(ctx context.Context, c Criteria) (int64, error) {
	var count int64
	if err := s.scope(ctx, c).Distinct("unit").Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormVolunteerStore) CountDistinctStudents(ctx context.Context, c Criteria) (int64, error) {
	var count int64
	if err := s.scope(ctx, c).Distinct("student_id").Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormVolunteerStore) UpdateFields(ctx context.Context, id int, fields map[string]interface{}) (*models.VolunteerApplication, error) {
	err := s.db.WithContext(ctx).
		Model(&models.VolunteerApplication{}).
		Where("volunteer_id = ? AND delete_at IS NULL", id).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}
	// MySQL reports zero affected rows for values-identical updates too, so
	// RowsAffected cannot distinguish "missing" from "unchanged"; the
	// read-back settles it and returns ErrNotFound only for missing rows.
	return s.GetByID(ctx, id)
}

func (s *GormVolunteerStore) UpdateManyWhere(ctx context.Context, ids []int, fields map[string]interface{}) ([]models.VolunteerApplication, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	err := s.db.WithContext(ctx).
		Model(&models.VolunteerApplication{}).
		Where("volunteer_id IN ? AND delete_at IS NULL", ids).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}
	var records []models.VolunteerApplication
	err = s.db.WithContext(ctx).
		Where("volunteer_id IN ? AND delete_at IS NULL", ids).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormVolunteerStore) DeleteByID(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).
		Where("volunteer_id = ?", id).
		Delete(&models.VolunteerApplication{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
