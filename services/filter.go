package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"volunteer-portal-api/models"
)

// FilterParams carries the raw, stringly-typed filter values a dashboard
// sends. Empty strings and the literal "all" leave a field unconstrained.
type FilterParams struct {
	Status     string
	Unit       string
	Course     string
	Semester   string
	BloodGroup string
	IsActive   string
	Search     string
}

func unconstrained(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return v == "" || v == "all"
}

// BuildCriteria validates raw filter values and produces store criteria.
// Invalid status, semester or is_active values are rejected here so the
// store only ever sees well-formed constraints.
func BuildCriteria(p FilterParams) (Criteria, error) {
	var c Criteria

	if !unconstrained(p.Status) {
		status, err := models.ParseStatus(strings.TrimSpace(p.Status))
		if err != nil {
			return Criteria{}, err
		}
		c.Status = string(status)
	}
	if !unconstrained(p.Unit) {
		c.Unit = strings.TrimSpace(p.Unit)
	}
	if !unconstrained(p.Course) {
		c.Course = strings.TrimSpace(p.Course)
	}
	if !unconstrained(p.Semester) {
		semester, err := strconv.Atoi(strings.TrimSpace(p.Semester))
		if err != nil || semester <= 0 {
			return Criteria{}, fmt.Errorf("invalid semester '%s'", p.Semester)
		}
		c.Semester = &semester
	}
	if !unconstrained(p.BloodGroup) {
		c.BloodGroup = strings.TrimSpace(p.BloodGroup)
	}
	if !unconstrained(p.IsActive) {
		active, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(p.IsActive)))
		if err != nil {
			return Criteria{}, fmt.Errorf("invalid is_active '%s'", p.IsActive)
		}
		c.IsActive = &active
	}
	if search := strings.TrimSpace(p.Search); search != "" {
		c.Search = search
	}

	return c, nil
}

// List returns every record matching the criteria, newest first.
func (s *VolunteerService) List(ctx context.Context, c Criteria) ([]models.VolunteerApplication, error) {
	records, err := s.store.Query(ctx, c)
	if err != nil {
		return nil, storeErr("list volunteers", err)
	}
	return records, nil
}
