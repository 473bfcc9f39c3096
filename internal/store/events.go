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

type eventDoc struct {
	ID          string `bson:"id"`
	Title       string `bson:"title"`
	Description string `bson:"description"`
	Date        string `bson:"date"`
	Time        string `bson:"time"`
	Category    string `bson:"category"`
	CreatedAt   string `bson:"created_at"`
}

func toEventDoc(e models.Event) eventDoc {
	return eventDoc{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Category:    e.Category,
		CreatedAt:   formatTime(e.CreatedAt),
	}
}

func (d eventDoc) model() (models.Event, error) {
	createdAt, err := parseTime(d.CreatedAt)
	if err != nil {
		return models.Event{}, fmt.Errorf("event %s: bad created_at: %w", d.ID, err)
	}
	return models.Event{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date,
		Time:        d.Time,
		Category:    d.Category,
		CreatedAt:   createdAt,
	}, nil
}

// InsertEvent writes a new event document.
func (s *Store) InsertEvent(ctx context.Context, e models.Event) error {
	if _, err := s.events().InsertOne(ctx, toEventDoc(e)); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// ListEvents returns events in ascending date order.
func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetLimit(listLimit)
	cur, err := s.events().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	var docs []eventDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := make([]models.Event, 0, len(docs))
	for _, d := range docs {
		e, err := d.model()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// GetEvent returns a single event or ErrNotFound.
func (s *Store) GetEvent(ctx context.Context, id string) (models.Event, error) {
	var d eventDoc
	err := s.events().FindOne(ctx, bson.M{"id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Event{}, ErrNotFound
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("get event: %w", err)
	}
	return d.model()
}

// UpdateEvent replaces the mutable fields of an existing event. The id and
// created_at stay as assigned at creation. ErrNotFound when no document
// matched the id.
func (s *Store) UpdateEvent(ctx context.Context, id string, r models.CreateEventRequest) error {
	res, err := s.events().UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{
			"title":       r.Title,
			"description": r.Description,
			"date":        r.Date,
			"time":        r.Time,
			"category":    r.Category,
		}},
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEvent removes an event document. Events are the one entity that is
// hard-deleted.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	res, err := s.events().DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
