package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tyforge/tyforge-backend/internal/dto"
	"github.com/tyforge/tyforge-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidTransition = errors.New("signup step transition not allowed")
	ErrProjectNotFound   = errors.New("project not found")
)

// OnboardingService drives the signup_step progression on the user row.
type OnboardingService struct {
	db *gorm.DB
}

func NewOnboardingService(db *gorm.DB) *OnboardingService {
	return &OnboardingService{db: db}
}

// SelectPlan records the chosen plan, advances plan_selection -> project_setup
// and inserts a UserService row per chosen add-on. The service inserts are
// separate statements; a crash between them leaves a valid partial state.
func (s *OnboardingService) SelectPlan(userID uuid.UUID, planID string, serviceIDs []string) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	if !user.SignupStep.CanAdvance(models.StepProjectSetup) {
		return ErrInvalidTransition
	}

	err := s.db.Model(&user).Updates(map[string]interface{}{
		"selected_plan_id": planID,
		"signup_step":      models.StepProjectSetup,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}

	for _, serviceID := range serviceIDs {
		link := models.UserService{
			ID:        uuid.New(),
			UserID:    userID,
			ServiceID: serviceID,
			Selected:  true,
		}
		if err := s.db.Create(&link).Error; err != nil {
			return fmt.Errorf("failed to add service %s: %w", serviceID, err)
		}
	}

	return nil
}

// CreateProjectIdea inserts a UserProject at idea_submitted. The signup step
// does not move here; only the synopsis upload completes onboarding.
func (s *OnboardingService) CreateProjectIdea(userID uuid.UUID, req *dto.ProjectIdeaRequest) (*models.UserProject, error) {
	project := models.UserProject{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		IdeaGenerated: req.IdeaGenerated,
		Status:        models.ProjectIdeaSubmitted,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, fmt.Errorf("failed to create project idea: %w", err)
	}
	return &project, nil
}

// AttachSynopsis records an uploaded synopsis on the project and forces the
// owner straight to completed, whatever step they were on. The two updates are
// independent statements, matching the non-transactional store contract.
func (s *OnboardingService) AttachSynopsis(userID, projectID uuid.UUID, filePath, originalName string) error {
	var project models.UserProject
	if err := s.db.First(&project, "id = ? AND user_id = ?", projectID, userID).Error; err != nil {
		return ErrProjectNotFound
	}

	err := s.db.Model(&project).Updates(map[string]interface{}{
		"synopsis_file_path":     filePath,
		"synopsis_original_name": originalName,
		"status":                 models.ProjectSynopsisUploaded,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return s.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"has_synopsis":         true,
		"signup_step":          models.StepCompleted,
		"onboarding_completed": true,
	}).Error
}

// Complete forces signup_step to completed, independent of prior progress.
func (s *OnboardingService) Complete(userID uuid.UUID) error {
	res := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"signup_step":          models.StepCompleted,
		"onboarding_completed": true,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *OnboardingService) Status(userID uuid.UUID) (*dto.SignupStatusResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	return &dto.SignupStatusResponse{
		SignupStep:          user.SignupStep,
		OnboardingCompleted: user.OnboardingCompleted,
		SelectedPlanID:      user.SelectedPlanID,
	}, nil
}
