package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the account row. The signup_step column drives the onboarding state
// machine; selected_plan_id references a Plan by ID without an enforced FK.
type User struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email               string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	Name                string     `gorm:"not null;size:255" json:"name"`
	Phone               string     `gorm:"size:50;default:''" json:"phone"`
	IsAdmin             bool       `gorm:"default:false" json:"-"`
	SignupStep          SignupStep `gorm:"size:20;not null;default:'basic_info'" json:"signup_step"`
	SelectedPlanID      *string    `gorm:"size:50" json:"selected_plan_id"`
	HasSynopsis         bool       `gorm:"default:false" json:"has_synopsis"`
	NeedsIdeaGeneration bool       `gorm:"default:false" json:"-"`
	OnboardingCompleted bool       `gorm:"default:false" json:"onboarding_completed"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
