package services

import (
	"github.com/tyforge/tyforge-backend/internal/dto"
	"github.com/tyforge/tyforge-backend/internal/models"
	"gorm.io/gorm"
)

// CatalogService reads the seeded plan and service catalog.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) Plans() ([]dto.PlanResponse, error) {
	var plans []models.Plan
	if err := s.db.Order("price ASC").Find(&plans).Error; err != nil {
		return nil, err
	}

	out := make([]dto.PlanResponse, 0, len(plans))
	for i := range plans {
		p := &plans[i]
		out = append(out, dto.PlanResponse{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Price:        p.Price,
			Features:     p.FeatureList(),
			BlogIncluded: p.BlogIncluded,
			MaxProjects:  p.MaxProjects,
			SupportLevel: p.SupportLevel,
		})
	}
	return out, nil
}

func (s *CatalogService) Services() ([]models.Service, error) {
	var services []models.Service
	err := s.db.Order("category ASC, price ASC").Find(&services).Error
	return services, err
}

// UpdatePlanPrices overwrites plan prices by ID. Used only by the one-off
// maintenance command, never by normal operation.
func (s *CatalogService) UpdatePlanPrices(prices map[string]int) error {
	for planID, price := range prices {
		err := s.db.Model(&models.Plan{}).Where("id = ?", planID).Update("price", price).Error
		if err != nil {
			return err
		}
	}
	return nil
}
