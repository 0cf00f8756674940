package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan is the user's subscription tier. It acts as a rate-limit class:
// each tier maps to a monthly upload ceiling.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// MonthlyFileLimit returns the upload ceiling for the plan.
// Unknown plans fall back to the free tier.
func (p Plan) MonthlyFileLimit() int {
	switch p {
	case PlanPro:
		return 50
	case PlanEnterprise:
		return 500
	default:
		return 5
	}
}

// User is the single account record. The quota counters live on the row
// itself so admission and increment can be one conditional update.
type User struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName           string    `gorm:"size:255;not null" json:"full_name"`
	Email              string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password           string    `gorm:"not null" json:"-"`
	Plan               Plan      `gorm:"size:20;not null;default:'free'" json:"plan"`
	MonthlyFileLimit   int       `gorm:"not null;default:5" json:"monthly_file_limit"`
	FilesUploadedCount int       `gorm:"not null;default:0" json:"files_uploaded_count"`
	LastLimitReset     time.Time `gorm:"not null" json:"last_limit_reset"`
	IsEmailVerified    bool      `gorm:"not null;default:false" json:"is_email_verified"`
	IsActive           bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// FilesRemaining is the number of uploads left in the current period.
func (u *User) FilesRemaining() int {
	remaining := u.MonthlyFileLimit - u.FilesUploadedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}
