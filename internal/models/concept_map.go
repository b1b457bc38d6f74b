package models

import "time"

// Concept is one node of a course concept map.
type Concept struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Connections []string `json:"connections"`
	Level       int      `json:"level"`
}

// ConceptMap visualises topic relationships for one course. Generated once
// per course and cached.
type ConceptMap struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	CourseName  string    `json:"course_name"`
	Concepts    []Concept `json:"concepts"`
	GeneratedAt time.Time `json:"generated_at"`
}
