package models

import "time"

// Complaint is raised by a student and tracked until resolution.
type Complaint struct {
	ID           string     `json:"id"`
	StudentEmail string     `json:"student_email"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Status       string     `json:"status"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
