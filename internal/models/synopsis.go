package models

import (
	"time"

	"github.com/google/uuid"
)

// Synopsis records one uploaded document. FileName is the generated on-disk
// path; OriginalName is the caller-supplied name, kept for display only.
type Synopsis struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	FileName     string    `gorm:"not null;type:text" json:"file_name"`
	OriginalName string    `gorm:"not null;type:text" json:"original_name"`
	Status       string    `gorm:"not null;size:50;default:'Pending'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
