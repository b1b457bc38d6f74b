package models

import "time"

// Grade is keyed by (student, course, semester, assignment); a second upload
// for the same key overwrites Letter rather than creating a new record.
type Grade struct {
	ID           string     `json:"id"`
	TeacherEmail string     `json:"teacher_email"`
	StudentEmail string     `json:"student_email"`
	Course       string     `json:"course"`
	Letter       string     `json:"grade"`
	Semester     string     `json:"semester"`
	AssignmentID string     `json:"assignment_id,omitempty"`
	UploadedAt   time.Time  `json:"uploaded_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// CourseGradeSummary aggregates a student's letters for one course.
type CourseGradeSummary struct {
	Letters []string `json:"grades"`
	Average float64  `json:"average"`
}

// CourseAttendanceSummary aggregates attendance counts for one course.
type CourseAttendanceSummary struct {
	Present    int     `json:"present"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// PerformanceReport combines per-course attendance and raw grades.
type PerformanceReport struct {
	Attendance map[string]CourseAttendanceSummary `json:"attendance"`
	Grades     []Grade                            `json:"grades"`
}
