package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/docuplain/docuplain-backend/internal/dto"
	"github.com/docuplain/docuplain-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProfileService struct {
	db    *gorm.DB
	quota *QuotaService
}

func NewProfileService(db *gorm.DB, quota *QuotaService) *ProfileService {
	return &ProfileService{db: db, quota: quota}
}

// GetProfile returns the full profile. The read is quota-sensitive: the
// monthly reset check runs before the record is returned.
func (s *ProfileService) GetProfile(userID uuid.UUID) (*dto.ProfileData, error) {
	user, err := s.quota.EnsureCurrentPeriod(userID)
	if err != nil {
		return nil, err
	}
	data := dto.NewProfileData(user)
	return &data, nil
}

// UpdateProfile applies a partial update of full name and/or password.
// A password change requires the current password to verify.
func (s *ProfileService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdatedProfileData, error) {
	if req.FullName == nil && req.NewPassword == nil {
		return nil, validationError("at least one field (fullName or newPassword) must be provided")
	}

	if req.FullName != nil {
		if strings.TrimSpace(*req.FullName) == "" {
			return nil, validationError("full name must be a non-empty string")
		}
		if len(*req.FullName) > 255 {
			return nil, validationError("full name must be less than 255 characters")
		}
	}

	if req.NewPassword != nil {
		if req.CurrentPassword == "" {
			return nil, validationError("current password is required when changing password")
		}
		if req.ConfirmPassword == "" {
			return nil, validationError("confirm password is required when changing password")
		}
		if *req.NewPassword != req.ConfirmPassword {
			return nil, validationError("new password and confirm password do not match")
		}
		if len(*req.NewPassword) < 8 {
			return nil, validationError("new password must be at least 8 characters long")
		}
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	updates := map[string]interface{}{}

	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}

	if req.NewPassword != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			return nil, ErrInvalidCurrentPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = string(hash)
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}

	return &dto.UpdatedProfileData{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Plan:      user.Plan,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// Deactivate soft-disables the account after password confirmation.
// Records are never hard-deleted; an inactive user is refused everywhere.
func (s *ProfileService) Deactivate(userID uuid.UUID, password string) error {
	if password == "" {
		return validationError("password is required")
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return ErrInvalidCurrentPassword
	}

	if err := s.db.Model(&user).Update("is_active", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate account: %w", err)
	}
	return nil
}
