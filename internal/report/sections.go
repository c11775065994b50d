package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jgoulah/bikeshare/internal/dataset"
	"github.com/jgoulah/bikeshare/internal/stats"
)

// Time prints the most frequent times of travel
func (r *Reporter) Time(table *dataset.Table) {
	r.section("Calculating The Most Frequent Times of Travel", func(w io.Writer) {
		s := stats.TimeOfTravel(table.Trips)
		if !s.OK {
			fmt.Fprintln(w, NoData)
			return
		}
		fmt.Fprintf(w, "Most Popular Month: %d (%s), %s\n", int(s.Month.Key), s.Month.Key, trips(s.Month.Count))
		fmt.Fprintf(w, "Most Popular Day of Week: %s, %s\n", s.Weekday.Key, trips(s.Weekday.Count))
		fmt.Fprintf(w, "Most Popular Start Hour: %d, %s\n", s.Hour.Key, trips(s.Hour.Count))
	})
}

// Stations prints the most popular stations and trip
func (r *Reporter) Stations(table *dataset.Table) {
	r.section("Calculating The Most Popular Stations and Trip", func(w io.Writer) {
		s := stats.Stations(table.Trips)
		if !s.OK {
			fmt.Fprintln(w, NoData)
			return
		}
		fmt.Fprintf(w, "Most commonly used Start Station: %s, %s\n", s.Start.Key, trips(s.Start.Count))
		fmt.Fprintf(w, "Most commonly used End Station: %s, %s\n", s.End.Key, trips(s.End.Count))
		fmt.Fprintf(w, "Most commonly used Trip: %s -> %s, %s\n", s.Route.Key.Start, s.Route.Key.End, trips(s.Route.Count))
	})
}

// Durations prints the total and average trip duration
func (r *Reporter) Durations(table *dataset.Table) {
	r.section("Calculating Trip Duration", func(w io.Writer) {
		d := stats.Durations(table.Trips)
		fmt.Fprintf(w, "Total travel time: %s\n", seconds(d.TotalSeconds()))
		if !d.OK() {
			fmt.Fprintln(w, "Average travel time: no data available")
			fmt.Fprintln(w, NoData)
			return
		}
		fmt.Fprintf(w, "Average travel time: %s\n", seconds(d.MeanSeconds()))
	})
}

// Users prints user type, gender and birth year statistics
func (r *Reporter) Users(table *dataset.Table) {
	r.section("Calculating User Stats", func(w io.Writer) {
		s := stats.Users(table)
		if !s.OK {
			fmt.Fprintln(w, NoData)
			return
		}

		fmt.Fprintln(w, "Counts of user types:")
		printCounts(w, s.UserTypes)

		if s.HasGender {
			fmt.Fprintln(w, "\nCounts of genders:")
			printCounts(w, s.Genders)
		} else {
			fmt.Fprintln(w, "\nGender data is not available for this city.")
		}

		if !s.HasBirthYear {
			fmt.Fprintln(w, "Birth year data is not available for this city.")
			return
		}
		if !s.BirthYears.OK {
			fmt.Fprintln(w, "\nNo birth years recorded for the selected trips.")
			return
		}
		fmt.Fprintf(w, "\nEarliest year of birth: %d\n", s.BirthYears.Earliest)
		fmt.Fprintf(w, "Most recent year of birth: %d\n", s.BirthYears.MostRecent)
		fmt.Fprintf(w, "Most common year of birth: %d\n", s.BirthYears.MostCommon.Key)
	})
}

func printCounts(w io.Writer, counts []stats.Count[string]) {
	if len(counts) == 0 {
		fmt.Fprintln(w, "  (none recorded)")
		return
	}
	for _, c := range counts {
		fmt.Fprintf(w, "  %-12s %s\n", c.Key+":", humanize.Comma(int64(c.Count)))
	}
}
