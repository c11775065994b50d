package models

import (
	"fmt"
	"slices"
	"time"
)

// All selects every month or every day
const All = "all"

// City pairs a city key with its backing CSV file
type City struct {
	Key  string
	File string
}

// Cities lists the known city keys in prompt order
var Cities = [...]City{
	{Key: "chicago", File: "chicago.csv"},
	{Key: "new york city", File: "new_york_city.csv"},
	{Key: "washington", File: "washington.csv"},
}

// Months lists the months covered by the datasets
var Months = [...]string{"january", "february", "march", "april", "may", "june"}

// Days lists the days of the week, Monday first
var Days = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Selection is the city/month/day triple chosen by the user
type Selection struct {
	City  string
	Month string
	Day   string
}

// CityKeys returns the city keys in prompt order
func CityKeys() []string {
	keys := make([]string, 0, len(Cities))
	for _, c := range Cities {
		keys = append(keys, c.Key)
	}
	return keys
}

// CityFile returns the CSV file name for a city key
func CityFile(key string) (string, bool) {
	for _, c := range Cities {
		if c.Key == key {
			return c.File, true
		}
	}
	return "", false
}

// MonthNumber returns the 1-based position of name within Months
func MonthNumber(name string) (time.Month, bool) {
	i := slices.Index(Months[:], name)
	if i < 0 {
		return 0, false
	}
	return time.Month(i + 1), true
}

// ParseWeekday maps a lower-case day name to its time.Weekday
func ParseWeekday(name string) (time.Weekday, bool) {
	i := slices.Index(Days[:], name)
	if i < 0 {
		return 0, false
	}
	// Days starts on Monday, time.Weekday on Sunday
	return time.Weekday((i + 1) % 7), true
}

// Validate checks the selection against the known cities, months and days
func (s Selection) Validate() error {
	if _, ok := CityFile(s.City); !ok {
		return fmt.Errorf("unknown city: %q", s.City)
	}
	if s.Month != All {
		if _, ok := MonthNumber(s.Month); !ok {
			return fmt.Errorf("unknown month: %q", s.Month)
		}
	}
	if s.Day != All {
		if _, ok := ParseWeekday(s.Day); !ok {
			return fmt.Errorf("unknown day: %q", s.Day)
		}
	}
	return nil
}

// String renders the selection for logs and headings
func (s Selection) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", s.City, s.Month, s.Day)
}
