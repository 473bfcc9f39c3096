package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"school-backend/internal/models"
)

type messageDoc struct {
	ID        string `bson:"id"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
	Subject   string `bson:"subject"`
	Message   string `bson:"message"`
	Status    string `bson:"status"`
	CreatedAt string `bson:"created_at"`
}

func toMessageDoc(m models.ContactMessage) messageDoc {
	return messageDoc{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    m.Status,
		CreatedAt: formatTime(m.CreatedAt),
	}
}

func (d messageDoc) model() (models.ContactMessage, error) {
	createdAt, err := parseTime(d.CreatedAt)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("message %s: bad created_at: %w", d.ID, err)
	}
	return models.ContactMessage{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Subject:   d.Subject,
		Message:   d.Message,
		Status:    d.Status,
		CreatedAt: createdAt,
	}, nil
}

// InsertMessage writes a new contact message document.
func (s *Store) InsertMessage(ctx context.Context, m models.ContactMessage) error {
	if _, err := s.messages().InsertOne(ctx, toMessageDoc(m)); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListMessages returns contact messages newest first.
func (s *Store) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listLimit)
	cur, err := s.messages().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	var docs []messageDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	out := make([]models.ContactMessage, 0, len(docs))
	for _, d := range docs {
		m, err := d.model()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
