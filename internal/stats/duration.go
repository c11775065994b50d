package stats

import (
	"math"

	"github.com/jgoulah/bikeshare/pkg/models"
)

// DurationStats holds trip duration aggregates in seconds
type DurationStats struct {
	Count int
	Total float64
	Mean  float64 // Only meaningful when Count > 0
}

// OK reports whether a mean is defined
func (d DurationStats) OK() bool {
	return d.Count > 0
}

// TotalSeconds returns the total rounded to the nearest second
func (d DurationStats) TotalSeconds() int64 {
	return int64(math.Round(d.Total))
}

// MeanSeconds returns the mean rounded to the nearest second
func (d DurationStats) MeanSeconds() int64 {
	return int64(math.Round(d.Mean))
}

// Durations sums and averages trip durations
func Durations(trips []models.Trip) DurationStats {
	var d DurationStats
	for i := range trips {
		d.Total += trips[i].Duration
	}
	d.Count = len(trips)
	if d.Count > 0 {
		d.Mean = d.Total / float64(d.Count)
	}
	return d
}
