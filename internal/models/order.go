package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ServiceType string    `gorm:"not null;size:255" json:"service_type"`
	Amount      int       `gorm:"not null" json:"amount"`
	Status      string    `gorm:"not null;size:50;default:'Pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
