package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"school-backend/internal/models"
)

type photoDoc struct {
	ID          string `bson:"id"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Category    string `bson:"category"`
	FilePath    string `bson:"file_path"`
	FileURL     string `bson:"file_url"`
	UploadedBy  string `bson:"uploaded_by"`
	UploadedAt  string `bson:"uploaded_at"`
	IsActive    bool   `bson:"is_active"`
}

func toPhotoDoc(p models.Photo) photoDoc {
	return photoDoc{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		FilePath:    p.FilePath,
		FileURL:     p.FileURL,
		UploadedBy:  p.UploadedBy,
		UploadedAt:  formatTime(p.UploadedAt),
		IsActive:    p.IsActive,
	}
}

func (d photoDoc) model() (models.Photo, error) {
	uploadedAt, err := parseTime(d.UploadedAt)
	if err != nil {
		return models.Photo{}, fmt.Errorf("photo %s: bad uploaded_at: %w", d.ID, err)
	}
	return models.Photo{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		FilePath:    d.FilePath,
		FileURL:     d.FileURL,
		UploadedBy:  d.UploadedBy,
		UploadedAt:  uploadedAt,
		IsActive:    d.IsActive,
	}, nil
}

// InsertPhoto writes a new photo document.
func (s *Store) InsertPhoto(ctx context.Context, p models.Photo) error {
	if _, err := s.photos().InsertOne(ctx, toPhotoDoc(p)); err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

// ListPhotos returns active photos newest first, optionally filtered by an
// exact category match.
func (s *Store) ListPhotos(ctx context.Context, category string) ([]models.Photo, error) {
	filter := bson.M{"is_active": true}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "uploaded_at", Value: -1}}).
		SetLimit(listLimit)
	cur, err := s.photos().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	var docs []photoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	out := make([]models.Photo, 0, len(docs))
	for _, d := range docs {
		p, err := d.model()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// GetPhoto returns a single active photo or ErrNotFound.
func (s *Store) GetPhoto(ctx context.Context, id string) (models.Photo, error) {
	var d photoDoc
	err := s.photos().FindOne(ctx, bson.M{"id": id, "is_active": true}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Photo{}, ErrNotFound
	}
	if err != nil {
		return models.Photo{}, fmt.Errorf("get photo: %w", err)
	}
	return d.model()
}

// SoftDeletePhoto flags a photo inactive. A photo that is already inactive
// reports ErrNotFound, so a second delete of the same id fails.
func (s *Store) SoftDeletePhoto(ctx context.Context, id string) error {
	res, err := s.photos().UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"is_active": false}},
	)
	if err != nil {
		return fmt.Errorf("soft delete photo: %w", err)
	}
	if res.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}
