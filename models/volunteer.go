package models

import (
	"time"
)

// VolunteerApplication represents the volunteer_applications table.
type VolunteerApplication struct {
	VolunteerID    int        `gorm:"primaryKey;column:volunteer_id" json:"volunteer_id"`
	StudentID      int        `gorm:"column:student_id;index" json:"student_id"`
	Unit           string     `gorm:"column:unit;index" json:"unit"`
	Name           string     `gorm:"column:name" json:"name"`
	RegistrationNo string     `gorm:"column:registration_no" json:"registration_no"`
	Phone          string     `gorm:"column:phone" json:"phone"`
	Email          string     `gorm:"column:email" json:"email"`
	Course         string     `gorm:"column:course" json:"course"`
	Semester       int        `gorm:"column:semester" json:"semester"`
	BloodGroup     string     `gorm:"column:blood_group" json:"blood_group"`
	Address        *string    `gorm:"column:address" json:"address,omitempty"`
	PhotoPath      *string    `gorm:"column:photo_path" json:"photo_path,omitempty"`
	Status         Status     `gorm:"column:status" json:"status"`
	EnrollNo       *string    `gorm:"column:enroll_no" json:"enroll_no,omitempty"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeleteAt       *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (VolunteerApplication) TableName() string {
	return "volunteer_applications"
}

// IsActive reports whether the application currently counts as an active
// volunteer (approved applications only).
func (v *VolunteerApplication) IsActive() bool {
	return v.Status == StatusApproved
}
