package models

import "time"

// Trip represents a single bike-share trip from a city CSV file
type Trip struct {
	StartTime    time.Time
	EndTime      time.Time // Zero when the file has no End Time column
	StartStation string
	EndStation   string
	Duration     float64   // Seconds
	UserType     string
	Gender       string
	BirthYear    int       // 0 when blank or absent

	// Derived from StartTime at load time
	Month   time.Month
	Weekday time.Weekday
	Hour    int

	// Raw holds every source cell in header order
	Raw []string
}

// Derive fills the month, day-of-week and hour columns from StartTime
func (t *Trip) Derive() {
	t.Month = t.StartTime.Month()
	t.Weekday = t.StartTime.Weekday()
	t.Hour = t.StartTime.Hour()
}
