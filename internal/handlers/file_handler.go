package handlers

import (
	"errors"
	"log/slog"

	"github.com/docuplain/docuplain-backend/internal/middleware"
	"github.com/docuplain/docuplain-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	uploadService *services.UploadService
}

func NewFileHandler(uploadService *services.UploadService) *FileHandler {
	return &FileHandler{uploadService: uploadService}
}

func (h *FileHandler) Upload(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized", "User not authenticated")
	}

	// A missing file is still passed down as nil: the gate checks the
	// account and quota before complaining about the payload.
	var file *services.FileUpload
	if header, err := c.FormFile("file"); err == nil {
		file = &services.FileUpload{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
		}
	}

	resp, err := h.uploadService.Upload(userID, file)
	if err != nil {
		var quotaErr *services.QuotaExceededError
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return fail(c, fiber.StatusNotFound, "User not found", "User account not found")
		case errors.Is(err, services.ErrAccountDeactivated):
			return fail(c, fiber.StatusForbidden, "Account deactivated", "Your account has been deactivated. Please contact support.")
		case errors.As(err, &quotaErr):
			return fail(c, fiber.StatusTooManyRequests, "Upload limit reached", quotaErr.Error())
		case errors.Is(err, services.ErrNoFileProvided):
			return fail(c, fiber.StatusBadRequest, "Validation Error", "No file uploaded")
		default:
			slog.Error("file upload failed", "error", err, "user_id", userID.String())
			return fail(c, fiber.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred during file upload")
		}
	}

	return success(c, fiber.StatusOK, "File uploaded successfully", resp)
}

func (h *FileHandler) Stats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized", "User not authenticated")
	}

	resp, err := h.uploadService.Stats(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, "User not found", "User account not found")
		}
		slog.Error("upload stats failed", "error", err, "user_id", userID.String())
		return fail(c, fiber.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred while retrieving upload stats")
	}

	return success(c, fiber.StatusOK, "Upload stats retrieved successfully", resp)
}

func (h *FileHandler) ListUploads(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized", "User not authenticated")
	}

	limit := c.QueryInt("limit", 20)
	records, err := h.uploadService.ListUploads(userID, limit)
	if err != nil {
		slog.Error("upload listing failed", "error", err, "user_id", userID.String())
		return fail(c, fiber.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred while listing uploads")
	}

	return success(c, fiber.StatusOK, "Uploads retrieved successfully", records)
}
