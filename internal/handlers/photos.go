package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"school-backend/internal/metrics"
	"school-backend/internal/models"
	"school-backend/internal/store"
	"school-backend/internal/upload"
)

// PhotoStore is the slice of the persistence gateway the gallery endpoints
// need.
type PhotoStore interface {
	InsertPhoto(ctx context.Context, p models.Photo) error
	ListPhotos(ctx context.Context, category string) ([]models.Photo, error)
	GetPhoto(ctx context.Context, id string) (models.Photo, error)
	SoftDeletePhoto(ctx context.Context, id string) error
}

// UploadPhotoHandler accepts a multipart photo upload, stores the file on
// disk and records its metadata. The file is written before the record; if
// the record insert fails the file stays behind as an orphan, which is
// logged for out-of-band cleanup.
func UploadPhotoHandler(photos PhotoStore, saver *upload.Saver, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "photo file is required"})
		}

		req := models.CreatePhotoRequest{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Category:    c.FormValue("category"),
		}
		if err := req.Validate(); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		if err := saver.ValidateType(fileHeader.Header.Get("Content-Type")); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		f, err := fileHeader.Open()
		if err != nil {
			logger.Error("failed to open uploaded file", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload photo"})
		}
		defer f.Close()

		filename, err := saver.Save(f, fileHeader.Filename)
		if errors.Is(err, upload.ErrFileTooLarge) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "File size exceeds 5MB limit."})
		}
		if err != nil {
			logger.Error("failed to save uploaded file", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload photo"})
		}

		photo := models.NewPhoto(req,
			filepath.Join(saver.Dir(), filename),
			"/uploads/photos/"+filename,
		)
		if err := photos.InsertPhoto(c.Context(), photo); err != nil {
			logger.Error("photo record insert failed, file orphaned",
				"path", photo.FilePath,
				"error", err,
			)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload photo"})
		}
		metrics.RecordsCreated.WithLabelValues("photo").Inc()
		logger.Info("photo uploaded", "id", photo.ID, "title", photo.Title)

		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"success":  true,
			"photo_id": photo.ID,
			"url":      photo.FileURL,
			"message":  "Photo uploaded successfully!",
		})
	}
}

// ListPhotosHandler returns active photos, newest first, optionally filtered
// by category.
func ListPhotosHandler(photos PhotoStore, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := photos.ListPhotos(c.Context(), c.Query("category"))
		if err != nil {
			logger.Error("failed to fetch photos", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch photos"})
		}
		return c.JSON(fiber.Map{"photos": list})
	}
}

// GetPhotoHandler returns a single active photo.
func GetPhotoHandler(photos PhotoStore, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photo, err := photos.GetPhoto(c.Context(), c.Params("id"))
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Photo not found"})
		}
		if err != nil {
			logger.Error("failed to fetch photo", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch photo"})
		}
		return c.JSON(fiber.Map{"photo": photo})
	}
}

// DeletePhotoHandler soft-deletes a photo. The file stays on disk and the
// record stays in the collection with is_active false.
func DeletePhotoHandler(photos PhotoStore, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		err := photos.SoftDeletePhoto(c.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Photo not found"})
		}
		if err != nil {
			logger.Error("failed to delete photo", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete photo"})
		}
		logger.Info("photo deleted", "id", id)
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Photo deleted successfully",
		})
	}
}
