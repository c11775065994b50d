package stats

import "github.com/jgoulah/bikeshare/pkg/models"

// Route is a start/end station pair
type Route struct {
	Start string
	End   string
}

// StationStats holds the most popular stations and trip
type StationStats struct {
	OK    bool
	Start Count[string]
	End   Count[string]
	Route Count[Route]
}

// Stations finds the most used start station, end station and route
func Stations(trips []models.Trip) StationStats {
	starts := newCounter[string]()
	ends := newCounter[string]()
	routes := newCounter[Route]()

	for i := range trips {
		starts.add(trips[i].StartStation)
		ends.add(trips[i].EndStation)
		routes.add(Route{Start: trips[i].StartStation, End: trips[i].EndStation})
	}

	var s StationStats
	s.Start, s.OK = starts.first()
	s.End, _ = ends.first()
	s.Route, _ = routes.first()
	return s
}
