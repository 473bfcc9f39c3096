// Package mailer sends admin notification emails for new admission enquiries
// and contact messages. Delivery is a best-effort side effect: the record is
// already persisted by the time a notification goes out, so transport
// problems are logged and reported as "not sent" rather than returned as
// errors.
package mailer

import (
	"context"
	"log/slog"
	"time"

	"school-backend/internal/models"
)

// sendTimeout bounds a single delivery attempt so a hung mail server never
// stalls the request that triggered the notification.
const sendTimeout = 15 * time.Second

// Email is a fully formatted outbound message with a plain-text body and an
// HTML alternative.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers a formatted email over one transport.
type Sender interface {
	// Enabled reports whether the transport has enough configuration to send.
	Enabled() bool
	Send(ctx context.Context, email Email) error
}

// Service formats notification emails and hands them to the configured
// transport.
type Service struct {
	sender Sender
	admin  string
	logger *slog.Logger
}

func NewService(sender Sender, adminEmail string, logger *slog.Logger) *Service {
	return &Service{sender: sender, admin: adminEmail, logger: logger}
}

// NotifyEnquiry emails the administrator about a new admission enquiry.
// The return value reports whether the mail was actually sent.
func (s *Service) NotifyEnquiry(ctx context.Context, e models.AdmissionEnquiry) bool {
	return s.deliver(ctx, enquiryEmail(s.admin, e))
}

// NotifyMessage emails the administrator about a new contact message.
func (s *Service) NotifyMessage(ctx context.Context, m models.ContactMessage) bool {
	return s.deliver(ctx, messageEmail(s.admin, m))
}

func (s *Service) deliver(ctx context.Context, email Email) bool {
	if s.sender == nil || !s.sender.Enabled() {
		s.logger.Warn("mail transport not configured, notification skipped",
			"to", email.To,
			"subject", email.Subject,
		)
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := s.sender.Send(ctx, email); err != nil {
		s.logger.Error("failed to send notification",
			"to", email.To,
			"subject", email.Subject,
			"error", err,
		)
		return false
	}
	s.logger.Info("notification sent", "to", email.To, "subject", email.Subject)
	return true
}
