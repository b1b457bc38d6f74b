package models

import "time"

// UserRole represents the account variants served by the campus API.
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleParent  UserRole = "parent"
)

// User represents a registered account. Role-specific fields are populated
// depending on Role: RollNumber and FatherName for students, Subject for
// teachers, StudentEmail for parents linked to their child's account.
type User struct {
	ID           string    `json:"id"`
	Role         UserRole  `json:"role"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Department   string    `json:"department,omitempty"`
	RollNumber   string    `json:"roll_number,omitempty"`
	FatherName   string    `json:"father_name,omitempty"`
	Subject      string    `json:"subject,omitempty"`
	StudentEmail string    `json:"student_email,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}
