package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Upload records the metadata of an admitted upload. File bytes are not
// persisted here; they are handed to the explanation pipeline downstream.
type Upload struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	FileName    string         `gorm:"size:255;not null" json:"file_name"`
	SizeBytes   int64          `json:"size_bytes"`
	ContentType string         `gorm:"size:100" json:"content_type"`
	Metadata    datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata"`
	UploadedAt  time.Time      `gorm:"not null;index" json:"uploaded_at"`
	CreatedAt   time.Time      `json:"created_at"`
	User        User           `gorm:"foreignKey:UserID" json:"-"`
}
