package dataset

import (
	"fmt"

	"github.com/jgoulah/bikeshare/pkg/models"
)

// Table is an ordered set of trips for one city
type Table struct {
	Header []string
	Trips  []models.Trip

	// Schema capabilities; not every city records gender or birth year
	HasGender    bool
	HasBirthYear bool
}

// Len returns the number of trips in the table
func (t *Table) Len() int {
	return len(t.Trips)
}

// Filter returns the trips matching month and day, either of which may be models.All.
// Row order is preserved and the receiver is not modified.
func (t *Table) Filter(month, day string) (*Table, error) {
	out := t.with(t.Trips)

	if month != models.All {
		m, ok := models.MonthNumber(month)
		if !ok {
			return nil, fmt.Errorf("unknown month: %q", month)
		}
		out = out.where(func(trip *models.Trip) bool { return trip.Month == m })
	}

	if day != models.All {
		d, ok := models.ParseWeekday(day)
		if !ok {
			return nil, fmt.Errorf("unknown day: %q", day)
		}
		out = out.where(func(trip *models.Trip) bool { return trip.Weekday == d })
	}

	return out, nil
}

// Page returns up to n trips starting at offset. An offset past the end yields an empty slice.
func (t *Table) Page(offset, n int) []models.Trip {
	if offset < 0 || n <= 0 || offset >= len(t.Trips) {
		return []models.Trip{}
	}
	end := min(offset+n, len(t.Trips))
	return t.Trips[offset:end]
}

func (t *Table) where(keep func(*models.Trip) bool) *Table {
	trips := make([]models.Trip, 0, len(t.Trips))
	for i := range t.Trips {
		if keep(&t.Trips[i]) {
			trips = append(trips, t.Trips[i])
		}
	}
	return t.with(trips)
}

func (t *Table) with(trips []models.Trip) *Table {
	return &Table{
		Header:       t.Header,
		Trips:        trips,
		HasGender:    t.HasGender,
		HasBirthYear: t.HasBirthYear,
	}
}
