package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is the legacy project record kept for order history display.
// UserProject supersedes it for the onboarding flow.
type Project struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Type      string    `gorm:"not null;size:100" json:"type"`
	Status    string    `gorm:"not null;size:50;default:'Pending'" json:"status"`
	FilePath  string    `gorm:"type:text" json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// UserProjectStatus tracks a project idea through the onboarding flow.
type UserProjectStatus string

const (
	ProjectIdeaPending      UserProjectStatus = "idea_pending"
	ProjectIdeaSubmitted    UserProjectStatus = "idea_submitted"
	ProjectSynopsisUploaded UserProjectStatus = "synopsis_uploaded"
)

// UserProject carries a project idea and its synopsis state together.
type UserProject struct {
	ID                   uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID               uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Title                string            `gorm:"not null;size:255" json:"title"`
	Description          string            `gorm:"type:text" json:"description"`
	IdeaGenerated        bool              `gorm:"default:false" json:"idea_generated"`
	SynopsisFilePath     string            `gorm:"type:text" json:"synopsis_file_path"`
	SynopsisOriginalName string            `gorm:"type:text" json:"synopsis_original_name"`
	Status               UserProjectStatus `gorm:"size:30;default:'idea_pending'" json:"status"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
	User                 User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
