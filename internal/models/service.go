package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is a purchasable service; IsAddon marks services not bundled in the
// base plan price.
type Service struct {
	ID          string    `gorm:"primaryKey;size:50" json:"id"`
	Name        string    `gorm:"not null;size:100" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       int       `gorm:"not null" json:"price"`
	Category    string    `gorm:"not null;size:50" json:"category"`
	IsAddon     bool      `gorm:"default:false" json:"is_addon"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserService links a user to a service they chose during plan selection.
type UserService struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ServiceID string    `gorm:"size:50;not null" json:"service_id"`
	Selected  bool      `gorm:"default:true" json:"selected"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Service   Service   `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"-"`
}
