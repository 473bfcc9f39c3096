package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMessageRequest is the POST body for a new contact message.
type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (r CreateMessageRequest) Validate() error {
	return validate.Struct(r)
}

// NewContactMessage builds the canonical record from a validated request.
func NewContactMessage(r CreateMessageRequest) ContactMessage {
	return ContactMessage{
		ID:        uuid.NewString(),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Subject:   r.Subject,
		Message:   r.Message,
		Status:    "unread",
		CreatedAt: time.Now().UTC(),
	}
}
