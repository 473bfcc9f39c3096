package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"school-backend/internal/metrics"
	"school-backend/internal/models"
	"school-backend/internal/store"
)

// EventStore is the slice of the persistence gateway the event endpoints
// need.
type EventStore interface {
	InsertEvent(ctx context.Context, e models.Event) error
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (models.Event, error)
	UpdateEvent(ctx context.Context, id string, r models.CreateEventRequest) error
	DeleteEvent(ctx context.Context, id string) error
}

// CreateEventHandler persists a new event and returns it.
func CreateEventHandler(events EventStore, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateEventRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := req.Validate(); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		event := models.NewEvent(req)
		if err := events.InsertEvent(c.Context(), event); err != nil {
			logger.Error("failed to create event", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create event"})
		}
		metrics.RecordsCreated.WithLabelValues("event").Inc()
		logger.Info("event created", "id", event.ID, "title", event.Title)

		return c.Status(http.StatusCreated).JSON(event)
	}
}

// ListEventsHandler returns all events in ascending date order.
func ListEventsHandler(events EventStore, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := events.ListEvents(c.Context())
		if err != nil {
			logger.Error("failed to fetch events", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch events"})
		}
		return c.JSON(fiber.Map{"events": list})
	}
}

// UpdateEventHandler replaces the fields of an existing event and returns
// the stored result. The id and creation timestamp are never reassigned.
func UpdateEventHandler(events EventStore, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var req models.CreateEventRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := req.Validate(); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		err := events.UpdateEvent(c.Context(), id, req)
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
		}
		if err != nil {
			logger.Error("failed to update event", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update event"})
		}

		event, err := events.GetEvent(c.Context(), id)
		if err != nil {
			logger.Error("failed to fetch updated event", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update event"})
		}
		logger.Info("event updated", "id", id)
		return c.JSON(event)
	}
}

// DeleteEventHandler removes an event. Events are hard-deleted, unlike
// photos.
func DeleteEventHandler(events EventStore, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		err := events.DeleteEvent(c.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Event not found"})
		}
		if err != nil {
			logger.Error("failed to delete event", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete event"})
		}
		logger.Info("event deleted", "id", id)
		return c.JSON(fiber.Map{"message": "Event deleted successfully"})
	}
}
