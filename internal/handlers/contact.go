package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"school-backend/internal/metrics"
	"school-backend/internal/models"
)

// MessageStore is the slice of the persistence gateway the contact endpoints
// need.
type MessageStore interface {
	InsertMessage(ctx context.Context, m models.ContactMessage) error
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
}

// CreateMessageHandler accepts a new contact message, persists it and
// notifies the administrator.
func CreateMessageHandler(store MessageStore, notifier Notifier, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateMessageRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := req.Validate(); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		message := models.NewContactMessage(req)
		if err := store.InsertMessage(c.Context(), message); err != nil {
			logger.Error("failed to create contact message", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create contact message"})
		}
		metrics.RecordsCreated.WithLabelValues("message").Inc()
		logger.Info("new contact message", "id", message.ID, "from", message.Name)

		recordNotification("message", notifier.NotifyMessage(c.Context(), message))

		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Message sent successfully! We will get back to you soon.",
		})
	}
}

// ListMessagesHandler returns all contact messages, newest first.
func ListMessagesHandler(store MessageStore, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messages, err := store.ListMessages(c.Context())
		if err != nil {
			logger.Error("failed to fetch messages", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch contact messages"})
		}
		return c.JSON(fiber.Map{"messages": messages})
	}
}
