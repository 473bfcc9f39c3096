package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"school-backend/internal/models"
)

type enquiryDoc struct {
	ID             string `bson:"id"`
	StudentName    string `bson:"student_name"`
	ParentName     string `bson:"parent_name"`
	Email          string `bson:"email"`
	Phone          string `bson:"phone"`
	Grade          string `bson:"grade"`
	PreviousSchool string `bson:"previous_school"`
	Message        string `bson:"message"`
	Status         string `bson:"status"`
	CreatedAt      string `bson:"created_at"`
}

func toEnquiryDoc(e models.AdmissionEnquiry) enquiryDoc {
	return enquiryDoc{
		ID:             e.ID,
		StudentName:    e.StudentName,
		ParentName:     e.ParentName,
		Email:          e.Email,
		Phone:          e.Phone,
		Grade:          e.Grade,
		PreviousSchool: e.PreviousSchool,
		Message:        e.Message,
		Status:         e.Status,
		CreatedAt:      formatTime(e.CreatedAt),
	}
}

func (d enquiryDoc) model() (models.AdmissionEnquiry, error) {
	createdAt, err := parseTime(d.CreatedAt)
	if err != nil {
		return models.AdmissionEnquiry{}, fmt.Errorf("enquiry %s: bad created_at: %w", d.ID, err)
	}
	return models.AdmissionEnquiry{
		ID:             d.ID,
		StudentName:    d.StudentName,
		ParentName:     d.ParentName,
		Email:          d.Email,
		Phone:          d.Phone,
		Grade:          d.Grade,
		PreviousSchool: d.PreviousSchool,
		Message:        d.Message,
		Status:         d.Status,
		CreatedAt:      createdAt,
	}, nil
}

// InsertEnquiry writes a new admission enquiry document.
func (s *Store) InsertEnquiry(ctx context.Context, e models.AdmissionEnquiry) error {
	if _, err := s.enquiries().InsertOne(ctx, toEnquiryDoc(e)); err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}

// ListEnquiries returns enquiries newest first.
func (s *Store) ListEnquiries(ctx context.Context) ([]models.AdmissionEnquiry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listLimit)
	cur, err := s.enquiries().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	var docs []enquiryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	out := make([]models.AdmissionEnquiry, 0, len(docs))
	for _, d := range docs {
		m, err := d.model()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
