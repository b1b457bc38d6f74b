package models

import "time"

// ChatMessage belongs to a parent/teacher conversation. The pair is
// unordered for lookup purposes even though each record keeps the
// orientation it was sent with.
type ChatMessage struct {
	ID           string    `json:"id"`
	ParentEmail  string    `json:"parent_email"`
	TeacherEmail string    `json:"teacher_email"`
	Sender       string    `json:"sender"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}
