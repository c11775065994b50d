// Package report prints the trip statistics reports to the console.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jgoulah/bikeshare/internal/dataset"
)

// NoData is printed by every report when the filtered table is empty
const NoData = "No data available for the selected filters."

// Separator closes every report block
var Separator = strings.Repeat("-", 40)

// Reporter writes the four trip reports
type Reporter struct {
	Out    io.Writer
	Logger *slog.Logger
	// Now is the clock used for elapsed time measurements
	Now func() time.Time
}

// New creates a reporter writing to out
func New(out io.Writer, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{Out: out, Logger: logger, Now: time.Now}
}

// All runs the time, station, duration and user reports in that order
func (r *Reporter) All(table *dataset.Table) {
	r.Time(table)
	r.Stations(table)
	r.Durations(table)
	r.Users(table)
}

// section prints a titled block with its elapsed time. A panic in body is
// reported in the block instead of stopping the remaining reports.
func (r *Reporter) section(title string, body func(w io.Writer)) {
	fmt.Fprintf(r.Out, "\n%s...\n\n", title)
	start := r.Now()

	func() {
		defer func() {
			if p := recover(); p != nil {
				r.Logger.Error("report failed", "report", title, "panic", p)
				fmt.Fprintf(r.Out, "Report failed: %v\n", p)
			}
		}()
		body(r.Out)
	}()

	elapsed := r.Now().Sub(start)
	fmt.Fprintf(r.Out, "\nThis took %s seconds.\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
	fmt.Fprintln(r.Out, Separator)
}

// trips formats a trip count, e.g. "1,204 trips"
func trips(n int) string {
	if n == 1 {
		return "1 trip"
	}
	return humanize.Comma(int64(n)) + " trips"
}

// seconds formats a whole number of seconds with a readable magnitude for long spans
func seconds(s int64) string {
	out := humanize.Comma(s) + " seconds"
	if s >= 60 {
		base := time.Unix(0, 0)
		rel := strings.TrimSpace(humanize.RelTime(base, base.Add(time.Duration(s)*time.Second), "", ""))
		out += " (" + rel + ")"
	}
	return out
}
