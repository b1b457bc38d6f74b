package models

import "time"

// QuestionPaper is an archived exam paper for a course and year.
type QuestionPaper struct {
	ID           string       `json:"id"`
	TeacherEmail string       `json:"teacher_email"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Course       string       `json:"course"`
	Year         string       `json:"year"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}
