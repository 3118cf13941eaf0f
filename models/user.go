package models

import (
	"time"
)

// User represents the users table (portal accounts: unit coordinators and admins).
type User struct {
	UserID    int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	UserFname string     `gorm:"column:user_fname" json:"user_fname"`
	UserLname string     `gorm:"column:user_lname" json:"user_lname"`
	Email     string     `gorm:"column:email;unique" json:"email"`
	Password  string     `gorm:"column:password" json:"-"`
	RoleID    int        `gorm:"column:role_id" json:"role_id"`
	Unit      *string    `gorm:"column:unit" json:"unit,omitempty"`
	Phone     *string    `gorm:"column:phone" json:"phone,omitempty"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt  *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Role UserRole `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

type UserRole struct {
	RoleID   int        `gorm:"primaryKey;column:role_id" json:"role_id"`
	Role     string     `gorm:"column:role" json:"role"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// PasswordReset represents the password_resets table.
type PasswordReset struct {
	ResetID   int        `gorm:"primaryKey;column:reset_id" json:"reset_id"`
	UserID    int        `gorm:"column:user_id;index" json:"user_id"`
	Token     string     `gorm:"column:token;unique" json:"-"`
	ExpiresAt time.Time  `gorm:"column:expires_at" json:"expires_at"`
	UsedAt    *time.Time `gorm:"column:used_at" json:"used_at,omitempty"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
}

func (User) TableName() string {
	return "users"
}

func (UserRole) TableName() string {
	return "roles"
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
