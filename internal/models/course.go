package models

import "time"

// Course is created by a teacher and immutable afterwards.
type Course struct {
	ID           string       `json:"id"`
	TeacherEmail string       `json:"teacher_email"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Department   string       `json:"department"`
	Duration     string       `json:"duration"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// EnrolledCourse enriches a course with the student's enrollment date.
type EnrolledCourse struct {
	Course
	EnrolledAt time.Time `json:"enrolled_at"`
}

// CourseStudent is the roster view of an enrolled student.
type CourseStudent struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	RollNumber string    `json:"roll_number,omitempty"`
	EnrolledAt time.Time `json:"enrolled_at"`
}
