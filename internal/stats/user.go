package stats

import (
	"github.com/jgoulah/bikeshare/internal/dataset"
)

// BirthYearStats holds birth year extremes and mode
type BirthYearStats struct {
	OK         bool
	Earliest   int
	MostRecent int
	MostCommon Count[int]
}

// UserStats holds user demographics. Gender and birth year sections are only
// filled when the source table has those columns.
type UserStats struct {
	OK           bool
	UserTypes    []Count[string]
	HasGender    bool
	Genders      []Count[string]
	HasBirthYear bool
	BirthYears   BirthYearStats
}

// Users counts user types, genders and summarizes birth years. Blank values are skipped.
func Users(table *dataset.Table) UserStats {
	s := UserStats{
		OK:           table.Len() > 0,
		HasGender:    table.HasGender,
		HasBirthYear: table.HasBirthYear,
	}

	userTypes := newCounter[string]()
	genders := newCounter[string]()
	years := newCounter[int]()

	for i := range table.Trips {
		trip := &table.Trips[i]
		if trip.UserType != "" {
			userTypes.add(trip.UserType)
		}
		if s.HasGender && trip.Gender != "" {
			genders.add(trip.Gender)
		}
		if s.HasBirthYear && trip.BirthYear != 0 {
			years.add(trip.BirthYear)
			if !s.BirthYears.OK || trip.BirthYear < s.BirthYears.Earliest {
				s.BirthYears.Earliest = trip.BirthYear
			}
			if !s.BirthYears.OK || trip.BirthYear > s.BirthYears.MostRecent {
				s.BirthYears.MostRecent = trip.BirthYear
			}
			s.BirthYears.OK = true
		}
	}

	s.UserTypes = userTypes.sorted()
	if s.HasGender {
		s.Genders = genders.sorted()
	}
	if s.BirthYears.OK {
		s.BirthYears.MostCommon, _ = years.first()
	}
	return s
}
