package models

import (
	"time"

	"github.com/google/uuid"
)

// AdmissionEnquiry is a prospective-student admission enquiry record.
type AdmissionEnquiry struct {
	ID             string    `json:"id"`
	StudentName    string    `json:"student_name"`
	ParentName     string    `json:"parent_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Grade          string    `json:"grade"`
	PreviousSchool string    `json:"previous_school"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateEnquiryRequest is the POST body for a new admission enquiry.
type CreateEnquiryRequest struct {
	StudentName    string `json:"student_name" validate:"required"`
	ParentName     string `json:"parent_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Grade          string `json:"grade" validate:"required"`
	PreviousSchool string `json:"previous_school"`
	Message        string `json:"message"`
}

func (r CreateEnquiryRequest) Validate() error {
	return validate.Struct(r)
}

// NewAdmissionEnquiry builds the canonical record from a validated request.
func NewAdmissionEnquiry(r CreateEnquiryRequest) AdmissionEnquiry {
	return AdmissionEnquiry{
		ID:             uuid.NewString(),
		StudentName:    r.StudentName,
		ParentName:     r.ParentName,
		Email:          r.Email,
		Phone:          r.Phone,
		Grade:          r.Grade,
		PreviousSchool: r.PreviousSchool,
		Message:        r.Message,
		Status:         "pending",
		CreatedAt:      time.Now().UTC(),
	}
}
