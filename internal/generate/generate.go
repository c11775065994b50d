// Package generate writes synthetic city trip files in the same layout as the
// published bike-share datasets.
package generate

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jaswdr/faker"
	"github.com/jgoulah/bikeshare/pkg/models"
)

// Options control the generated data
type Options struct {
	Rows     int
	Stations int
	Seed     int64
}

// Only these cities publish rider gender and birth year
var demographics = map[string]bool{
	"chicago":       true,
	"new york city": true,
}

var (
	periodStart = time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC)
	periodEnd   = time.Date(2017, time.July, 1, 0, 0, 0, 0, time.UTC)
)

// Header returns the CSV header used for city
func Header(city string) []string {
	header := []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if demographics[city] {
		header = append(header, "Gender", "Birth Year")
	}
	return header
}

// Write generates opts.Rows trips for city
func Write(w io.Writer, city string, opts Options) error {
	if _, ok := models.CityFile(city); !ok {
		return fmt.Errorf("unknown city: %q", city)
	}
	if opts.Stations <= 0 {
		opts.Stations = 20
	}

	fake := faker.NewWithSeed(rand.NewSource(opts.Seed))
	stations := make([]string, opts.Stations)
	for i := range stations {
		stations[i] = fmt.Sprintf("%s & %s", fake.Address().StreetName(), fake.Address().StreetName())
	}

	out := csv.NewWriter(w)
	if err := out.Write(Header(city)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	span := int(periodEnd.Sub(periodStart) / time.Second)
	for i := 0; i < opts.Rows; i++ {
		start := periodStart.Add(time.Duration(fake.IntBetween(0, span-1)) * time.Second)
		duration := fake.IntBetween(60, 3600)
		end := start.Add(time.Duration(duration) * time.Second)

		record := []string{
			strconv.Itoa(fake.IntBetween(1, 9999999)),
			start.Format("2006-01-02 15:04:05"),
			end.Format("2006-01-02 15:04:05"),
			strconv.Itoa(duration),
			fake.RandomStringElement(stations),
			fake.RandomStringElement(stations),
			fake.RandomStringElement([]string{"Subscriber", "Subscriber", "Subscriber", "Customer"}),
		}
		if demographics[city] {
			gender, year := "", ""
			// Roughly one rider in ten leaves demographics blank
			if fake.IntBetween(1, 10) > 1 {
				gender = fake.RandomStringElement([]string{"Male", "Female"})
				year = strconv.Itoa(fake.IntBetween(1940, 2001)) + ".0"
			}
			record = append(record, gender, year)
		}

		if err := out.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	out.Flush()
	return out.Error()
}

// WriteFile generates the CSV for city in dir and returns its path
func WriteFile(dir, city string, opts Options) (string, error) {
	name, ok := models.CityFile(city)
	if !ok {
		return "", fmt.Errorf("unknown city: %q", city)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, city, opts); err != nil {
		return "", err
	}
	return path, f.Close()
}
