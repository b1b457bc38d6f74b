package models

import "time"

// Assignment is posted by a teacher for a course.
type Assignment struct {
	ID           string       `json:"id"`
	TeacherEmail string       `json:"teacher_email"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	DueDate      string       `json:"due_date"`
	Course       string       `json:"course"`
	Department   string       `json:"department"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Submission records a student's hand-in for an assignment.
type Submission struct {
	ID           string      `json:"id"`
	AssignmentID string      `json:"assignment_id"`
	StudentEmail string      `json:"student_email"`
	Attachment   *Attachment `json:"attachment,omitempty"`
	Status       string      `json:"status"`
	SubmittedAt  time.Time   `json:"submitted_at"`
}
