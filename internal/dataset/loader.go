package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jgoulah/bikeshare/pkg/models"
	"github.com/schollz/progressbar/v3"
)

// Column names as they appear in the city CSV headers
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColDuration     = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{ColStartTime, ColDuration, ColStartStation, ColEndStation, ColUserType}

// Loader reads city CSV files from a data directory
type Loader struct {
	DataDir string
	// Progress receives a progress bar while a file is read. Nil disables it.
	Progress io.Writer
}

// NewLoader creates a loader rooted at dataDir
func NewLoader(dataDir string) *Loader {
	return &Loader{DataDir: dataDir}
}

// Path resolves a city key to its CSV file
func (l *Loader) Path(city string) (string, error) {
	file, ok := models.CityFile(city)
	if !ok {
		return "", fmt.Errorf("unknown city: %q", city)
	}
	return filepath.Join(l.DataDir, file), nil
}

// Load reads the city named in sel and applies its month and day filters
func (l *Loader) Load(ctx context.Context, sel models.Selection) (*Table, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	table, err := l.LoadCity(ctx, sel.City)
	if err != nil {
		return nil, err
	}
	return table.Filter(sel.Month, sel.Day)
}

// LoadCity reads the unfiltered table for a city
func (l *Loader) LoadCity(ctx context.Context, city string) (*Table, error) {
	path, err := l.Path(city)
	if err != nil {
		return nil, err
	}

	table, err := l.LoadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading %s data: %w", city, err)
	}
	return table, nil
}

// LoadFile reads the unfiltered table from a CSV file
func (l *Loader) LoadFile(ctx context.Context, path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if l.Progress != nil {
		if info, err := file.Stat(); err == nil {
			bar := progressbar.NewOptions64(info.Size(),
				progressbar.OptionSetWriter(l.Progress),
				progressbar.OptionSetDescription("loading "+filepath.Base(path)),
				progressbar.OptionShowBytes(true),
				progressbar.OptionClearOnFinish(),
				progressbar.OptionThrottle(65*time.Millisecond),
			)
			defer bar.Finish()
			r = io.TeeReader(file, bar)
		}
	}

	table, err := Parse(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return table, nil
}

// Parse reads a trip CSV with a header row into a Table
func Parse(ctx context.Context, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Missing: requiredColumns}
		}
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	// Find column indices
	cols := make(map[string]int, len(header))
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}
	index := func(name string) int {
		if i, ok := cols[strings.ToLower(name)]; ok {
			return i
		}
		return -1
	}

	var missing []string
	for _, name := range requiredColumns {
		if index(name) < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	startCol := index(ColStartTime)
	endCol := index(ColEndTime)
	durationCol := index(ColDuration)
	startStationCol := index(ColStartStation)
	endStationCol := index(ColEndStation)
	userTypeCol := index(ColUserType)
	genderCol := index(ColGender)
	birthYearCol := index(ColBirthYear)

	table := &Table{
		Header:       header,
		HasGender:    genderCol >= 0,
		HasBirthYear: birthYearCol >= 0,
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}

		// Check for cancellation every few thousand rows
		if len(table.Trips)%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line, _ := reader.FieldPos(0)
		cell := func(i int) string {
			if i < 0 || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		trip := models.Trip{
			StartStation: cell(startStationCol),
			EndStation:   cell(endStationCol),
			UserType:     cell(userTypeCol),
			Gender:       cell(genderCol),
			Raw:          record,
		}

		trip.StartTime, err = parseTimestamp(cell(startCol))
		if err != nil {
			return nil, &ParseError{Line: line, Column: ColStartTime, Value: cell(startCol), Err: err}
		}

		if s := cell(endCol); s != "" {
			trip.EndTime, err = parseTimestamp(s)
			if err != nil {
				return nil, &ParseError{Line: line, Column: ColEndTime, Value: s, Err: err}
			}
		}

		trip.Duration, err = strconv.ParseFloat(cell(durationCol), 64)
		if err != nil {
			return nil, &ParseError{Line: line, Column: ColDuration, Value: cell(durationCol), Err: err}
		}

		// Birth years are stored as floats ("1992.0") and may be blank
		if s := cell(birthYearCol); s != "" {
			year, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Column: ColBirthYear, Value: s, Err: err}
			}
			trip.BirthYear = int(year)
		}

		trip.Derive()
		table.Trips = append(table.Trips, trip)
	}

	return table, nil
}

// timestampLayouts are tried in order when parsing Start Time and End Time
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05-07:00",
	time.RFC3339,
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"01/02/2006 15:04:05",
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format")
}
