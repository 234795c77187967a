package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/tyforge-backend/internal/storage"
)

// BlackbookHandler serves the static reference document to any caller.
type BlackbookHandler struct {
	files *storage.FileStore
}

func NewBlackbookHandler(files *storage.FileStore) *BlackbookHandler {
	return &BlackbookHandler{files: files}
}

func (h *BlackbookHandler) Download(c *fiber.Ctx) error {
	path, err := h.files.BlackbookPath()
	if err != nil {
		return internalError(c)
	}
	return c.Download(path, "BlackBook.pdf")
}
