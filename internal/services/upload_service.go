package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/docuplain/docuplain-backend/internal/dto"
	"github.com/docuplain/docuplain-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FileUpload describes the payload of an upload attempt. Only metadata is
// kept; the bytes themselves are not stored by this service.
type FileUpload struct {
	Name        string
	Size        int64
	ContentType string
}

// UploadService is the gate in front of the upload pipeline: it resolves
// the user, applies the quota reset check, enforces the ceiling, and
// records the admitted upload.
type UploadService struct {
	db    *gorm.DB
	quota *QuotaService
}

func NewUploadService(db *gorm.DB, quota *QuotaService) *UploadService {
	return &UploadService{db: db, quota: quota}
}

// Upload admits or rejects a single upload. The counter increment and the
// metadata row are committed in one transaction, so an admitted upload is
// always counted.
func (s *UploadService) Upload(userID uuid.UUID, file *FileUpload) (*dto.UploadData, error) {
	user, err := s.quota.EnsureCurrentPeriod(userID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	if s.quota.Exhausted(user) {
		return nil, &QuotaExceededError{Limit: user.MonthlyFileLimit}
	}

	if file == nil {
		return nil, ErrNoFileProvided
	}

	upload := models.Upload{
		ID:          uuid.New(),
		UserID:      user.ID,
		FileName:    file.Name,
		SizeBytes:   file.Size,
		ContentType: file.ContentType,
		UploadedAt:  time.Now().UTC(),
	}
	if meta, err := json.Marshal(map[string]interface{}{
		"size_bytes":   file.Size,
		"content_type": file.ContentType,
	}); err == nil {
		upload.Metadata = datatypes.JSON(meta)
	}

	var newCount int
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		newCount, txErr = s.quota.TryConsume(tx, user)
		if txErr != nil {
			return txErr
		}
		return tx.Create(&upload).Error
	})
	if err != nil {
		var quotaErr *QuotaExceededError
		if errors.As(err, &quotaErr) {
			return nil, quotaErr
		}
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}

	return &dto.UploadData{
		FileID:         upload.ID,
		FileName:       upload.FileName,
		UploadedAt:     upload.UploadedAt,
		FilesRemaining: user.MonthlyFileLimit - newCount,
	}, nil
}

// Stats reports current-period usage. Runs the lazy reset check first.
func (s *UploadService) Stats(userID uuid.UUID) (*dto.StatsData, error) {
	user, err := s.quota.EnsureCurrentPeriod(userID)
	if err != nil {
		return nil, err
	}

	return &dto.StatsData{
		FilesUploaded:  user.FilesUploadedCount,
		MonthlyLimit:   user.MonthlyFileLimit,
		FilesRemaining: user.FilesRemaining(),
		LastReset:      user.LastLimitReset,
		Plan:           user.Plan,
	}, nil
}

// ListUploads returns the user's most recent uploads, newest first.
func (s *UploadService) ListUploads(userID uuid.UUID, limit int) ([]dto.UploadRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var uploads []models.Upload
	err := s.db.Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Limit(limit).
		Find(&uploads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}

	records := make([]dto.UploadRecord, 0, len(uploads))
	for i := range uploads {
		records = append(records, dto.NewUploadRecord(&uploads[i]))
	}
	return records, nil
}
