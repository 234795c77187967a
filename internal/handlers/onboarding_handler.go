package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tyforge/tyforge-backend/internal/dto"
	"github.com/tyforge/tyforge-backend/internal/middleware"
	"github.com/tyforge/tyforge-backend/internal/services"
	"github.com/tyforge/tyforge-backend/internal/storage"
)

// OnboardingHandler serves the signup-flow endpoints: plan selection, project
// idea creation, project synopsis upload, admin help and status.
type OnboardingHandler struct {
	onboarding     *services.OnboardingService
	accountService *services.AccountService
	files          *storage.FileStore
}

func NewOnboardingHandler(onboarding *services.OnboardingService, accountService *services.AccountService, files *storage.FileStore) *OnboardingHandler {
	return &OnboardingHandler{onboarding: onboarding, accountService: accountService, files: files}
}

func (h *OnboardingHandler) SelectPlan(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.PlanSelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.onboarding.SelectPlan(user.ID, req.PlanID, req.SelectedServices); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c)
	}

	return c.JSON(dto.StepResponse{Message: "Plan selected successfully", NextStep: "project_setup"})
}

func (h *OnboardingHandler) CreateProjectIdea(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.ProjectIdeaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	project, err := h.onboarding.CreateProjectIdea(user.ID, &req)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(dto.ProjectIdeaResponse{
		Message:   "Project idea created successfully",
		ProjectID: project.ID,
		NextStep:  "synopsis_upload",
	})
}

// UploadProjectSynopsis writes the PDF, attaches it to the project and forces
// the owner's onboarding to completed.
func (h *OnboardingHandler) UploadProjectSynopsis(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid project id",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "File is required",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return internalError(c)
	}
	defer src.Close()

	path, err := h.files.SaveSynopsis(fileHeader.Filename, src)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Only PDF files allowed",
			})
		}
		return internalError(c)
	}

	if err := h.onboarding.AttachSynopsis(user.ID, projectID, path, fileHeader.Filename); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Project not found",
			})
		}
		return internalError(c)
	}

	return c.JSON(dto.ProjectIdeaResponse{Message: "Synopsis uploaded successfully", ProjectID: projectID})
}

func (h *OnboardingHandler) RequestAdminHelp(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.AdminHelpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	created, err := h.accountService.RequestAdminHelp(user.ID, req.RequestType, req.Description)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(dto.CreatedResponse{Message: "Admin request created successfully", ID: created.ID})
}

func (h *OnboardingHandler) SignupStatus(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	status, err := h.onboarding.Status(user.ID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(status)
}

func (h *OnboardingHandler) CompleteOnboarding(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.onboarding.Complete(user.ID); err != nil {
		return internalError(c)
	}
	return c.JSON(dto.MessageResponse{Message: "Onboarding completed successfully"})
}
