package models

import "time"

// Timetable is an uploaded schedule for one department. Lookups return only
// the latest upload.
type Timetable struct {
	ID           string    `json:"id"`
	TeacherEmail string    `json:"teacher_email"`
	Department   string    `json:"department"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
