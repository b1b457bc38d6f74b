package models

// Holiday is one entry of the static holiday calendar.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
