package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"school-backend/internal/metrics"
	"school-backend/internal/models"
)

// EnquiryStore is the slice of the persistence gateway the admission
// endpoints need.
type EnquiryStore interface {
	InsertEnquiry(ctx context.Context, e models.AdmissionEnquiry) error
	ListEnquiries(ctx context.Context) ([]models.AdmissionEnquiry, error)
}

// Notifier sends best-effort admin notifications. The bool result reports
// whether the mail went out; it never blocks a successful response.
type Notifier interface {
	NotifyEnquiry(ctx context.Context, e models.AdmissionEnquiry) bool
	NotifyMessage(ctx context.Context, m models.ContactMessage) bool
}

// CreateEnquiryHandler accepts a new admission enquiry, persists it and
// notifies the administrator.
func CreateEnquiryHandler(store EnquiryStore, notifier Notifier, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateEnquiryRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if err := req.Validate(); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		enquiry := models.NewAdmissionEnquiry(req)
		if err := store.InsertEnquiry(c.Context(), enquiry); err != nil {
			logger.Error("failed to create admission enquiry", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create admission enquiry"})
		}
		metrics.RecordsCreated.WithLabelValues("enquiry").Inc()
		logger.Info("new admission enquiry", "id", enquiry.ID, "parent", enquiry.ParentName)

		recordNotification("enquiry", notifier.NotifyEnquiry(c.Context(), enquiry))

		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"success":    true,
			"message":    "Admission enquiry submitted successfully! We will contact you soon.",
			"enquiry_id": enquiry.ID,
		})
	}
}

// ListEnquiriesHandler returns all enquiries, newest first.
func ListEnquiriesHandler(store EnquiryStore, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		enquiries, err := store.ListEnquiries(c.Context())
		if err != nil {
			logger.Error("failed to fetch enquiries", "error", err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch admission enquiries"})
		}
		return c.JSON(fiber.Map{"enquiries": enquiries})
	}
}

func recordNotification(kind string, sent bool) {
	outcome := "sent"
	if !sent {
		outcome = "skipped"
	}
	metrics.NotificationsSent.WithLabelValues(kind, outcome).Inc()
}
