// Package upload stores incoming gallery photos on local disk. Files are
// streamed through a temp file so an oversized upload never reaches its final
// location.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"school-backend/internal/config"
)

const (
	// MaxFileSize is the upload ceiling.
	MaxFileSize = 5 * 1024 * 1024
	chunkSize   = 1024 * 1024
)

var (
	ErrFileTooLarge = errors.New("file size exceeds 5MB limit")
	ErrInvalidType  = errors.New("invalid file type")
)

var allowedTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// Saver validates and persists uploaded files under a fixed directory.
// In-flight uploads are staged in tmpDir, which must live outside the
// publicly served tree (and on the same filesystem, so the final rename
// stays atomic) — a partial file must never be fetchable by name.
type Saver struct {
	dir    string
	tmpDir string
	policy string
}

// NewSaver creates the upload and staging directories if needed.
func NewSaver(dir, tmpDir, policy string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	return &Saver{dir: dir, tmpDir: tmpDir, policy: policy}, nil
}

// Dir returns the directory files are saved under.
func (s *Saver) Dir() string { return s.dir }

// ValidateType checks the declared content type against the configured
// policy before anything touches disk.
func (s *Saver) ValidateType(contentType string) error {
	if s.policy == config.UploadPolicyImagePrefix {
		if !strings.HasPrefix(contentType, "image/") {
			return fmt.Errorf("%w: file must be an image", ErrInvalidType)
		}
		return nil
	}
	for _, t := range allowedTypes {
		if contentType == t {
			return nil
		}
	}
	return fmt.Errorf("%w: only JPG, PNG, and WebP are allowed", ErrInvalidType)
}

// Save streams r to a staging file in fixed-size chunks, enforcing
// MaxFileSize, then moves it into place under a unique name that preserves
// the original extension. On any failure the partial file is removed.
func (s *Saver) Save(r io.Reader, originalName string) (string, error) {
	tmp, err := os.CreateTemp(s.tmpDir, "upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	var size int64
	for {
		n, err := io.CopyN(tmp, r, chunkSize)
		size += n
		if size > MaxFileSize {
			tmp.Close()
			os.Remove(tmpName)
			return "", ErrFileTooLarge
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return "", fmt.Errorf("write upload: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close upload: %w", err)
	}

	filename := uniqueFilename(originalName)
	if err := os.Rename(tmpName, filepath.Join(s.dir, filename)); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("move upload: %w", err)
	}
	return filename, nil
}

// uniqueFilename combines a timestamp and a random suffix, keeping the
// original extension.
func uniqueFilename(originalName string) string {
	u := uuid.New()
	return fmt.Sprintf("%s_%x%s",
		time.Now().UTC().Format("20060102_150405"),
		u[:4],
		filepath.Ext(originalName),
	)
}
