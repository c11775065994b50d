package generate

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jgoulah/bikeshare/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_loadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "chicago", Options{Rows: 50, Stations: 4, Seed: 7}))

	table, err := dataset.Parse(context.Background(), &buf)
	require.NoError(t, err)

	require.Equal(t, 50, table.Len())
	assert.True(t, table.HasGender)
	assert.True(t, table.HasBirthYear)
	for _, trip := range table.Trips {
		assert.GreaterOrEqual(t, trip.Duration, 60.0)
		assert.LessOrEqual(t, trip.Duration, 3600.0)
		assert.LessOrEqual(t, trip.Month, time.June)
		assert.Equal(t, trip.StartTime.Add(time.Duration(trip.Duration)*time.Second), trip.EndTime)
	}
}

func TestWrite_washingtonHasNoDemographics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "washington", Options{Rows: 5, Seed: 1}))

	table, err := dataset.Parse(context.Background(), &buf)
	require.NoError(t, err)
	assert.False(t, table.HasGender)
	assert.False(t, table.HasBirthYear)
}

func TestWrite_deterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, Write(&a, "new york city", Options{Rows: 20, Seed: 42}))
	require.NoError(t, Write(&b, "new york city", Options{Rows: 20, Seed: 42}))
	assert.Equal(t, a.String(), b.String())
}

func TestWrite_unknownCity(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorContains(t, Write(&buf, "boston", Options{Rows: 1}), "boston")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(dir, "washington", Options{Rows: 3, Seed: 3})
	require.NoError(t, err)

	loader := dataset.NewLoader(dir)
	want, err := loader.Path("washington")
	require.NoError(t, err)
	assert.Equal(t, want, path)

	table, err := loader.LoadCity(context.Background(), "washington")
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
}
