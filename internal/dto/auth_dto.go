package dto

import (
	"time"

	"github.com/docuplain/docuplain-backend/internal/models"
	"github.com/google/uuid"
)

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is a partial update. Pointers distinguish
// "field absent" from "field present but empty".
type UpdateProfileRequest struct {
	FullName        *string `json:"fullName"`
	CurrentPassword string  `json:"currentPassword"`
	NewPassword     *string `json:"newPassword"`
	ConfirmPassword string  `json:"confirmPassword"`
}

type DeactivateRequest struct {
	Password string `json:"password"`
}

// UserSummary is the user shape embedded in auth responses.
type UserSummary struct {
	ID                 uuid.UUID   `json:"id"`
	FullName           string      `json:"fullName"`
	Email              string      `json:"email"`
	Plan               models.Plan `json:"plan"`
	FilesUploadedCount int         `json:"filesUploadedCount"`
	MonthlyFileLimit   int         `json:"monthlyFileLimit"`
	IsEmailVerified    bool        `json:"isEmailVerified"`
}

type AuthData struct {
	AccessToken string      `json:"accessToken"`
	User        UserSummary `json:"user"`
}

type ProfileData struct {
	ID                 uuid.UUID   `json:"id"`
	FullName           string      `json:"fullName"`
	Email              string      `json:"email"`
	Plan               models.Plan `json:"plan"`
	FilesUploadedCount int         `json:"filesUploadedCount"`
	MonthlyFileLimit   int         `json:"monthlyFileLimit"`
	LastLimitReset     time.Time   `json:"lastLimitReset"`
	IsActive           bool        `json:"isActive"`
	IsEmailVerified    bool        `json:"isEmailVerified"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

type UpdatedProfileData struct {
	ID        uuid.UUID   `json:"id"`
	FullName  string      `json:"fullName"`
	Email     string      `json:"email"`
	Plan      models.Plan `json:"plan"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:                 u.ID,
		FullName:           u.FullName,
		Email:              u.Email,
		Plan:               u.Plan,
		FilesUploadedCount: u.FilesUploadedCount,
		MonthlyFileLimit:   u.MonthlyFileLimit,
		IsEmailVerified:    u.IsEmailVerified,
	}
}

func NewProfileData(u *models.User) ProfileData {
	return ProfileData{
		ID:                 u.ID,
		FullName:           u.FullName,
		Email:              u.Email,
		Plan:               u.Plan,
		FilesUploadedCount: u.FilesUploadedCount,
		MonthlyFileLimit:   u.MonthlyFileLimit,
		LastLimitReset:     u.LastLimitReset,
		IsActive:           u.IsActive,
		IsEmailVerified:    u.IsEmailVerified,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
