package models

import "time"

// Enrollment links a student to a course. The (student, course) pair is
// unique; enrollments are never removed.
type Enrollment struct {
	ID           string    `json:"id"`
	StudentEmail string    `json:"student_email"`
	CourseID     string    `json:"course_id"`
	EnrolledAt   time.Time `json:"enrolled_at"`
}
