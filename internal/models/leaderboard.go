package models

import "time"

// RankedStudent is one leaderboard row; rank is implied by slice position.
type RankedStudent struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	RollNumber string `json:"roll_number,omitempty"`
	Credits    int    `json:"credits"`
}

// LeaderboardSnapshot is an immutable publication for one (month, year)
// period. At most one snapshot exists per period; republication is rejected.
type LeaderboardSnapshot struct {
	ID           string          `json:"id"`
	TeacherEmail string          `json:"teacher_email"`
	Month        string          `json:"month"`
	Year         string          `json:"year"`
	TopStudents  []RankedStudent `json:"top_students"`
	CreatedAt    time.Time       `json:"created_at"`
}
