package dto

import (
	"time"

	"github.com/docuplain/docuplain-backend/internal/models"
	"github.com/google/uuid"
)

type UploadData struct {
	FileID         uuid.UUID `json:"fileId"`
	FileName       string    `json:"fileName"`
	UploadedAt     time.Time `json:"uploadedAt"`
	FilesRemaining int       `json:"filesRemaining"`
}

type StatsData struct {
	FilesUploaded  int         `json:"filesUploaded"`
	MonthlyLimit   int         `json:"monthlyLimit"`
	FilesRemaining int         `json:"filesRemaining"`
	LastReset      time.Time   `json:"lastReset"`
	Plan           models.Plan `json:"plan"`
}

type UploadRecord struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"fileName"`
	SizeBytes   int64     `json:"sizeBytes"`
	ContentType string    `json:"contentType"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

func NewUploadRecord(u *models.Upload) UploadRecord {
	return UploadRecord{
		ID:          u.ID,
		FileName:    u.FileName,
		SizeBytes:   u.SizeBytes,
		ContentType: u.ContentType,
		UploadedAt:  u.UploadedAt,
	}
}
