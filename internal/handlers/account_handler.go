package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/tyforge-backend/internal/dto"
	"github.com/tyforge/tyforge-backend/internal/middleware"
	"github.com/tyforge/tyforge-backend/internal/services"
	"github.com/tyforge/tyforge-backend/internal/storage"
)

// AccountHandler serves the owner-scoped history lists, profile updates,
// synopsis uploads and meeting booking.
type AccountHandler struct {
	accountService *services.AccountService
	files          *storage.FileStore
}

func NewAccountHandler(accountService *services.AccountService, files *storage.FileStore) *AccountHandler {
	return &AccountHandler{accountService: accountService, files: files}
}

func (h *AccountHandler) Orders(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	orders, err := h.accountService.Orders(user.ID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(orders)
}

func (h *AccountHandler) Projects(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	projects, err := h.accountService.Projects(user.ID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(projects)
}

func (h *AccountHandler) Synopses(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	synopses, err := h.accountService.Synopses(user.ID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(synopses)
}

func (h *AccountHandler) Meetings(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	meetings, err := h.accountService.Meetings(user.ID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(meetings)
}

// UploadSynopsis stores the PDF on disk first, then records the row. The file
// keeps a generated name; the original name is recorded for display.
func (h *AccountHandler) UploadSynopsis(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

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

	syn, err := h.accountService.AddSynopsis(user.ID, path, fileHeader.Filename)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(dto.CreatedResponse{Message: "Synopsis uploaded successfully", ID: syn.ID})
}

func (h *AccountHandler) BookMeeting(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	meeting, err := h.accountService.BookMeeting(user.ID)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(dto.CreatedResponse{Message: "Meeting booked successfully", ID: meeting.ID})
}

func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.accountService.UpdateProfile(user.ID, req.Name, req.Phone); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return internalError(c)
	}

	return c.JSON(dto.MessageResponse{Message: "Profile updated successfully"})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
