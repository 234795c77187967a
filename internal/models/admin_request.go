package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminRequest is a help request raised by a user for staff follow-up.
// Response is filled in out of band; no route updates it.
type AdminRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	RequestType string    `gorm:"not null;size:100" json:"request_type"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"size:50;default:'pending'" json:"status"`
	Response    string    `gorm:"type:text" json:"response"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
