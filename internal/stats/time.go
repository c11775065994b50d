package stats

import (
	"time"

	"github.com/jgoulah/bikeshare/pkg/models"
)

// TimeStats holds the most frequent times of travel
type TimeStats struct {
	OK      bool
	Month   Count[time.Month]
	Weekday Count[time.Weekday]
	Hour    Count[int]
}

// TimeOfTravel finds the most common month, day of week and start hour
func TimeOfTravel(trips []models.Trip) TimeStats {
	months := newCounter[time.Month]()
	weekdays := newCounter[time.Weekday]()
	hours := newCounter[int]()

	for i := range trips {
		months.add(trips[i].Month)
		weekdays.add(trips[i].Weekday)
		hours.add(trips[i].Hour)
	}

	var s TimeStats
	s.Month, s.OK = months.smallest(func(m time.Month) int { return int(m) })
	s.Weekday, _ = weekdays.first()
	s.Hour, _ = hours.first()
	return s
}
