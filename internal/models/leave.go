package models

import "time"

// LeaveStatus tracks the review state of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveRequest is submitted by a student or teacher and reviewed later.
type LeaveRequest struct {
	ID          string      `json:"id"`
	UserEmail   string      `json:"user_email"`
	Kind        string      `json:"kind"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	Reason      string      `json:"reason"`
	Document    *Attachment `json:"document,omitempty"`
	Status      LeaveStatus `json:"status"`
	SubmittedAt time.Time   `json:"submitted_at"`
	ProcessedAt *time.Time  `json:"processed_at,omitempty"`
}
