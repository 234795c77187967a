package models

import (
	"strings"
	"time"
)

// Plan is a pricing tier. Plans use fixed string IDs ("basic_plan", …) set by the
// seed routine, and Features is a comma-joined list split only for display.
type Plan struct {
	ID           string    `gorm:"primaryKey;size:50" json:"id"`
	Name         string    `gorm:"not null;size:100" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        int       `gorm:"not null" json:"price"`
	Features     string    `gorm:"not null;type:text" json:"-"`
	BlogIncluded bool      `gorm:"default:false" json:"blog_included"`
	MaxProjects  int       `gorm:"default:1" json:"max_projects"` // -1 means unlimited
	SupportLevel string    `gorm:"size:50;default:'Basic'" json:"support_level"`
	CreatedAt    time.Time `json:"created_at"`
}

// FeatureList splits the stored comma-joined feature string.
func (p *Plan) FeatureList() []string {
	return strings.Split(p.Features, ",")
}
