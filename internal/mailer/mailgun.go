package mailer

import (
	"context"
	"fmt"

	mailgun "github.com/mailgun/mailgun-go/v5"
)

// MailgunConfig holds Mailgun API configuration.
type MailgunConfig struct {
	APIKey string
	Domain string
	From   string
}

// MailgunSender delivers mail through the Mailgun transactional API.
type MailgunSender struct {
	config MailgunConfig
	mg     mailgun.Mailgun
}

// NewMailgunSender constructs a sender. When cfg carries credentials and no
// explicit client is supplied, a default client is created.
func NewMailgunSender(config MailgunConfig, mg mailgun.Mailgun) *MailgunSender {
	if mg == nil && config.APIKey != "" {
		mg = mailgun.NewMailgun(config.APIKey)
	}
	return &MailgunSender{config: config, mg: mg}
}

func (s *MailgunSender) Enabled() bool {
	return s.mg != nil && s.config.APIKey != "" && s.config.Domain != ""
}

func (s *MailgunSender) Send(ctx context.Context, email Email) error {
	message := mailgun.NewMessage(s.config.Domain, s.config.From, email.Subject, email.TextBody)
	if err := message.AddRecipient(email.To); err != nil {
		return fmt.Errorf("add recipient: %w", err)
	}
	message.SetHTML(email.HTMLBody)

	if _, err := s.mg.Send(ctx, message); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	return nil
}
