package models

import "time"

// AttendanceStatus marks a student present or absent for one class date.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// AttendanceRecord is keyed by (student, course, date); recording again for
// the same key updates Status in place.
type AttendanceRecord struct {
	ID           string           `json:"id"`
	TeacherEmail string           `json:"teacher_email"`
	StudentEmail string           `json:"student_email"`
	Course       string           `json:"course"`
	Date         string           `json:"date"`
	Status       AttendanceStatus `json:"status"`
	RecordedAt   time.Time        `json:"recorded_at"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
}
