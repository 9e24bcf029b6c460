package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"capstonehub/internal/drive"
	"capstonehub/internal/model"
)

// driveFileResponse decorates the normalized file with the embed URL the
// page should load it through.
type driveFileResponse struct {
	model.DriveFile
	EmbedURL string `json:"embed_url"`
}

// ListDriveFiles returns the configured folder's contents. A provider
// failure yields an empty array, not an error status; only a missing
// configuration answers 500.
func ListDriveFiles(svc drive.Service, folderID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if svc == nil {
			return writeError(c, fiber.StatusInternalServerError, "DRIVE_NOT_CONFIGURED", "google drive credentials not configured")
		}
		if folderID == "" {
			return writeError(c, fiber.StatusInternalServerError, "DRIVE_NOT_CONFIGURED", "google drive folder id not configured")
		}
		return c.JSON(svc.ListFolder(c.UserContext(), folderID))
	}
}

// GetDriveFile returns one file's metadata, 404 when the provider has no
// such record.
func GetDriveFile(svc drive.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if svc == nil {
			return writeError(c, fiber.StatusInternalServerError, "DRIVE_NOT_CONFIGURED", "google drive credentials not configured")
		}
		f, err := svc.GetFile(c.UserContext(), c.Params("fileId"))
		if err != nil {
			if errors.Is(err, drive.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "failed to fetch file")
		}
		return c.JSON(driveFileResponse{DriveFile: *f, EmbedURL: drive.EmbedURL(*f)})
	}
}
