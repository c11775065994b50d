package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthNumber(t *testing.T) {
	m, ok := MonthNumber("january")
	require.True(t, ok)
	assert.Equal(t, time.January, m)

	m, ok = MonthNumber("june")
	require.True(t, ok)
	assert.Equal(t, time.June, m)

	_, ok = MonthNumber("july")
	assert.False(t, ok)
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]time.Weekday{
		"monday":    time.Monday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
		"wednesday": time.Wednesday,
	}
	for name, want := range cases {
		got, ok := ParseWeekday(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := ParseWeekday("Monday")
	assert.False(t, ok, "names are matched lower-case only")
}

func TestSelectionValidate(t *testing.T) {
	require.NoError(t, Selection{City: "chicago", Month: All, Day: All}.Validate())
	require.NoError(t, Selection{City: "new york city", Month: "march", Day: "friday"}.Validate())

	assert.ErrorContains(t, Selection{City: "boston", Month: All, Day: All}.Validate(), "boston")
	assert.ErrorContains(t, Selection{City: "washington", Month: "july", Day: All}.Validate(), "july")
	assert.ErrorContains(t, Selection{City: "washington", Month: All, Day: "someday"}.Validate(), "someday")
}

func TestSelectionString(t *testing.T) {
	sel := Selection{City: "new york city", Month: All, Day: "friday"}
	assert.Equal(t, "city=new york city month=all day=friday", sel.String())
}

func TestCityFile(t *testing.T) {
	f, ok := CityFile("new york city")
	require.True(t, ok)
	assert.Equal(t, "new_york_city.csv", f)

	_, ok = CityFile("boston")
	assert.False(t, ok)
	assert.Equal(t, []string{"chicago", "new york city", "washington"}, CityKeys())
}

func TestTripDerive(t *testing.T) {
	trip := Trip{StartTime: time.Date(2017, 1, 1, 8, 0, 0, 0, time.UTC)}
	trip.Derive()

	assert.Equal(t, time.January, trip.Month)
	assert.Equal(t, time.Sunday, trip.Weekday)
	assert.Equal(t, 8, trip.Hour)
}
