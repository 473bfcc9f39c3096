package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a school calendar event. Date and Time are stored verbatim as
// submitted; events are listed in ascending date order.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateEventRequest is the POST/PUT body for an event.
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Category    string `json:"category" validate:"required"`
}

func (r CreateEventRequest) Validate() error {
	return validate.Struct(r)
}

// NewEvent builds the canonical record from a validated request.
func NewEvent(r CreateEventRequest) Event {
	return Event{
		ID:          uuid.NewString(),
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		Category:    r.Category,
		CreatedAt:   time.Now().UTC(),
	}
}
