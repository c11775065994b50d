package session

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jgoulah/bikeshare/internal/dataset"
	"github.com/jgoulah/bikeshare/internal/prompt"
	"github.com/jgoulah/bikeshare/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sevenTrips() *dataset.Table {
	table := &dataset.Table{Header: []string{"", "Start Time", "Start Station"}}
	for i := 0; i < 7; i++ {
		start := time.Date(2017, 1, 1+i, 8, 0, 0, 0, time.UTC)
		trip := models.Trip{
			StartTime:    start,
			StartStation: fmt.Sprintf("Station %d", i),
			Raw:          []string{fmt.Sprint(i), start.Format("2006-01-02 15:04:05"), fmt.Sprintf("Station %d", i)},
		}
		trip.Derive()
		table.Trips = append(table.Trips, trip)
	}
	return table
}

func TestPager_Next(t *testing.T) {
	p := NewPager(sevenTrips(), 5)
	require.Equal(t, 0, p.Cursor)

	assert.Len(t, p.Next(), 5)
	assert.Equal(t, 5, p.Cursor)

	page := p.Next()
	require.Len(t, page, 2)
	assert.Equal(t, "Station 5", page[0].StartStation)
	assert.Equal(t, "Station 6", page[1].StartStation)
	assert.Equal(t, 10, p.Cursor)

	assert.Empty(t, p.Next())
	assert.Equal(t, 15, p.Cursor)
}

func TestPager_defaultPageSize(t *testing.T) {
	p := NewPager(sevenTrips(), 0)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestPager_Run(t *testing.T) {
	var out bytes.Buffer
	pr := prompt.New(strings.NewReader("yes\nperhaps\nYES\nyes\nno\n"), &out)
	p := NewPager(sevenTrips(), 5)

	require.NoError(t, p.Run(pr, &out))

	text := out.String()
	assert.Equal(t, 7, strings.Count(text, "\nTrip #"))
	assert.Contains(t, text, "Trip #7")
	assert.NotContains(t, text, "Trip #8")
	assert.Contains(t, text, "  Id: 0\n")
	assert.Contains(t, text, "  Start Station: Station 6\n")
	assert.Contains(t, text, "  day_of_week: Sunday\n")
	assert.Equal(t, 1, strings.Count(text, "Sorry, please input yes or no!"))
	assert.Equal(t, 1, strings.Count(text, "No more trips to show."))
	assert.Equal(t, 15, p.Cursor)
}
