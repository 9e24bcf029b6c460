package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"capstonehub/internal/model"
	"capstonehub/internal/service"
)

// ListDocuments returns the full registry snapshot, newest upload first.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(docs)
	}
}

// UploadDocument accepts a multipart upload (field name: file) with
// optional category and description form fields.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		category := c.FormValue("category")
		description := c.FormValue("description")

		doc, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size, category, description)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrFileTooLarge):
				return writeError(c, fiber.StatusBadRequest, "FILE_TOO_LARGE", err.Error())
			case errors.Is(err, service.ErrUnsupportedType):
				return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_TYPE", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// UpdateDocument retags a record. Only category and description are
// mutable; the body carries either or both.
func UpdateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var upd model.DocumentUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.Update(c.UserContext(), id, upd); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteDocument removes a record and its object. The caller must already
// hold the record's download URL and pass it in the url query parameter.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		downloadURL := c.Query("url")
		if downloadURL == "" {
			return writeError(c, fiber.StatusBadRequest, "DOWNLOAD_URL_REQUIRED", "url query parameter is required")
		}

		if err := svc.Delete(c.UserContext(), id, downloadURL); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DownloadDocument redirects to a short-lived presigned URL for the
// record's stored bytes.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		u, err := svc.DownloadLink(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Redirect(u, fiber.StatusFound)
	}
}

// DocumentCategories returns the fixed category list the UI offers.
func DocumentCategories() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.Categories)
	}
}
