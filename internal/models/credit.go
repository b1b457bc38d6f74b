package models

import "time"

// CreditActivity is one audit event inside a monthly bucket.
type CreditActivity struct {
	Timestamp time.Time `json:"timestamp"`
	Amount    int       `json:"credits"`
	Reason    string    `json:"reason"`
}

// MonthlyCredits buckets awards for one calendar month (YYYY-MM).
type MonthlyCredits struct {
	Month      string           `json:"month"`
	Credits    int              `json:"credits"`
	Activities []CreditActivity `json:"activities"`
}

// CreditLedger holds a student's running total plus monthly audit buckets.
// Invariant: TotalCredits == sum of bucket credits == sum of activity amounts.
type CreditLedger struct {
	ID           string           `json:"id"`
	StudentEmail string           `json:"student_email"`
	TotalCredits int              `json:"total_credits"`
	Months       []MonthlyCredits `json:"monthly_credits"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// TopStudent is the live credit-ranking view joined with profile data.
type TopStudent struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	RollNumber   string `json:"roll_number,omitempty"`
	Department   string `json:"department,omitempty"`
	TotalCredits int    `json:"total_credits"`
}
