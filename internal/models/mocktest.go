package models

import "time"

// MockTest records a self-assessment attempt. Submitting one awards credits
// tiered on the score percentage.
type MockTest struct {
	ID           string    `json:"id"`
	StudentEmail string    `json:"student_email"`
	Subject      string    `json:"subject"`
	Questions    int       `json:"questions"`
	Score        int       `json:"score"`
	TotalMarks   int       `json:"total_marks"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
