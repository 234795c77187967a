package dto

import (
	"github.com/google/uuid"
	"github.com/tyforge/tyforge-backend/internal/models"
)

type PlanSelectionRequest struct {
	PlanID           string   `json:"plan_id"`
	SelectedServices []string `json:"selected_services"`
}

type ProjectIdeaRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	IdeaGenerated bool   `json:"idea_generated"`
}

type AdminHelpRequest struct {
	RequestType string `json:"request_type"`
	Description string `json:"description"`
}

type ProfileUpdateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type SignupStatusResponse struct {
	SignupStep          models.SignupStep `json:"signup_step"`
	OnboardingCompleted bool              `json:"onboarding_completed"`
	SelectedPlanID      *string           `json:"selected_plan_id"`
}

type StepResponse struct {
	Message  string `json:"message"`
	NextStep string `json:"next_step"`
}

type CreatedResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

type ProjectIdeaResponse struct {
	Message   string    `json:"message"`
	ProjectID uuid.UUID `json:"project_id"`
	NextStep  string    `json:"next_step,omitempty"`
}
