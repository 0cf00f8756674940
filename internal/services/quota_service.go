package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/docuplain/docuplain-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuotaService owns the monthly upload counter: the lazy calendar-month
// reset and the check-and-increment that admits an upload. All quota reads
// and mutations funnel through here so no caller duplicates the reset logic.
type QuotaService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewQuotaService(db *gorm.DB) *QuotaService {
	return &QuotaService{db: db, now: time.Now}
}

// EnsureCurrentPeriod loads the user and resets the counter if the calendar
// month of the last reset differs from the current one. There is no
// scheduler; the reset fires on first access after the boundary. The update
// is guarded by last_limit_reset < period start, so concurrent callers
// crossing the boundary collapse to a single reset.
func (s *QuotaService) EnsureCurrentPeriod(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	now := s.now().UTC()
	if sameCalendarMonth(now, user.LastLimitReset.UTC()) {
		return &user, nil
	}

	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	result := s.db.Model(&models.User{}).
		Where("id = ? AND last_limit_reset < ?", userID, periodStart).
		UpdateColumns(map[string]interface{}{
			"files_uploaded_count": 0,
			"last_limit_reset":     now,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to reset monthly limit: %w", result.Error)
	}

	// Zero rows means another request already reset the period; re-read
	// either way so the caller sees the refreshed record.
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return &user, nil
}

// TryConsume admits one upload by incrementing the counter, but only while
// it is still below the ceiling. Check and increment are a single
// conditional update, so two racing uploads cannot both be admitted past
// the limit. Returns the count after the increment.
func (s *QuotaService) TryConsume(tx *gorm.DB, user *models.User) (int, error) {
	result := tx.Model(&models.User{}).
		Where("id = ? AND files_uploaded_count < monthly_file_limit", user.ID).
		UpdateColumn("files_uploaded_count", gorm.Expr("files_uploaded_count + 1"))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to increment upload count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, &QuotaExceededError{Limit: user.MonthlyFileLimit}
	}

	var refreshed models.User
	if err := tx.Select("files_uploaded_count").First(&refreshed, "id = ?", user.ID).Error; err != nil {
		return 0, fmt.Errorf("failed to reload upload count: %w", err)
	}
	return refreshed.FilesUploadedCount, nil
}

// Exhausted reports whether the user has no uploads left this period.
func (s *QuotaService) Exhausted(user *models.User) bool {
	return user.FilesUploadedCount >= user.MonthlyFileLimit
}

// sameCalendarMonth compares month+year equality, not elapsed duration:
// 31 days without crossing a month boundary is not a reset, while a single
// day across midnight on the 1st is.
func sameCalendarMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
