package models

import (
	"time"

	"github.com/google/uuid"
)

// Photo is a gallery photo. Deleted photos are kept with IsActive set to
// false; read paths must filter on it.
type Photo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	FilePath    string    `json:"file_path"`
	FileURL     string    `json:"file_url"`
	UploadedBy  string    `json:"uploaded_by"`
	UploadedAt  time.Time `json:"uploaded_at"`
	IsActive    bool      `json:"is_active"`
}

// CreatePhotoRequest holds the multipart form fields of an upload.
type CreatePhotoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
}

func (r CreatePhotoRequest) Validate() error {
	return validate.Struct(r)
}

// NewPhoto builds the canonical record once the file has been stored.
func NewPhoto(r CreatePhotoRequest, filePath, fileURL string) Photo {
	return Photo{
		ID:          uuid.NewString(),
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		FilePath:    filePath,
		FileURL:     fileURL,
		UploadedBy:  "admin",
		UploadedAt:  time.Now().UTC(),
		IsActive:    true,
	}
}
