package models

import "time"

// Event announces a campus-wide happening (fest, workshop, seminar).
type Event struct {
	ID               string       `json:"id"`
	TeacherEmail     string       `json:"teacher_email"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Date             string       `json:"date"`
	Kind             string       `json:"kind"`
	RegistrationLink string       `json:"registration_link,omitempty"`
	Attachments      []Attachment `json:"attachments,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
}
