package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"school-backend/internal/models"
)

const submittedAtLayout = "2006-01-02 15:04:05 MST"

var enquiryHTML = template.Must(template.New("enquiry").Parse(`<html>
	<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
		<div style="max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f9f9;">
			<h2 style="color: #3b82f6; border-bottom: 2px solid #fbbf24; padding-bottom: 10px;">New Admission Enquiry</h2>
			<div style="background-color: white; padding: 20px; border-radius: 8px; margin-top: 20px;">
				<p><strong>Student Name:</strong> {{.StudentName}}</p>
				<p><strong>Parent Name:</strong> {{.ParentName}}</p>
				<p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
				<p><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
				<p><strong>Grade:</strong> {{.Grade}}</p>
				<p><strong>Previous School:</strong> {{.PreviousSchool}}</p>
				<p><strong>Message:</strong></p>
				<p style="background-color: #f3f4f6; padding: 10px; border-radius: 4px;">{{.Message}}</p>
				<p style="color: #6b7280; font-size: 12px; margin-top: 20px;">Submitted at: {{.SubmittedAt}}</p>
			</div>
		</div>
	</body>
</html>`))

var messageHTML = template.Must(template.New("message").Parse(`<html>
	<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
		<div style="max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9f9f9;">
			<h2 style="color: #3b82f6; border-bottom: 2px solid #fbbf24; padding-bottom: 10px;">New Contact Message</h2>
			<div style="background-color: white; padding: 20px; border-radius: 8px; margin-top: 20px;">
				<p><strong>Name:</strong> {{.Name}}</p>
				<p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
				<p><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
				<p><strong>Subject:</strong> {{.Subject}}</p>
				<p><strong>Message:</strong></p>
				<p style="background-color: #f3f4f6; padding: 10px; border-radius: 4px;">{{.Message}}</p>
				<p style="color: #6b7280; font-size: 12px; margin-top: 20px;">Submitted at: {{.SubmittedAt}}</p>
			</div>
		</div>
	</body>
</html>`))

type enquiryData struct {
	StudentName    string
	ParentName     string
	Email          string
	Phone          string
	Grade          string
	PreviousSchool string
	Message        string
	SubmittedAt    string
}

type messageData struct {
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
	SubmittedAt string
}

func enquiryEmail(to string, e models.AdmissionEnquiry) Email {
	data := enquiryData{
		StudentName:    e.StudentName,
		ParentName:     e.ParentName,
		Email:          e.Email,
		Phone:          e.Phone,
		Grade:          e.Grade,
		PreviousSchool: orNA(e.PreviousSchool),
		Message:        orNA(e.Message),
		SubmittedAt:    e.CreatedAt.Format(submittedAtLayout),
	}

	text := fmt.Sprintf(`New Admission Enquiry Received

Student Name: %s
Parent Name: %s
Email: %s
Phone: %s
Grade: %s
Previous School: %s
Message: %s

Submitted at: %s
`, data.StudentName, data.ParentName, data.Email, data.Phone, data.Grade,
		data.PreviousSchool, data.Message, data.SubmittedAt)

	return Email{
		To:       to,
		Subject:  fmt.Sprintf("New Admission Enquiry - %s", e.StudentName),
		TextBody: text,
		HTMLBody: render(enquiryHTML, data),
	}
}

func messageEmail(to string, m models.ContactMessage) Email {
	data := messageData{
		Name:        m.Name,
		Email:       m.Email,
		Phone:       orNA(m.Phone),
		Subject:     m.Subject,
		Message:     m.Message,
		SubmittedAt: m.CreatedAt.Format(submittedAtLayout),
	}

	text := fmt.Sprintf(`New Contact Message Received

Name: %s
Email: %s
Phone: %s
Subject: %s
Message: %s

Submitted at: %s
`, data.Name, data.Email, data.Phone, data.Subject, data.Message, data.SubmittedAt)

	return Email{
		To:       to,
		Subject:  fmt.Sprintf("New Contact Message - %s", m.Subject),
		TextBody: text,
		HTMLBody: render(messageHTML, data),
	}
}

func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	// The templates are compile-time constants over plain string fields, so
	// execution cannot fail.
	_ = t.Execute(&buf, data)
	return buf.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
