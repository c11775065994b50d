package session

import (
	"fmt"
	"io"

	"github.com/jgoulah/bikeshare/internal/dataset"
	"github.com/jgoulah/bikeshare/internal/prompt"
	"github.com/jgoulah/bikeshare/pkg/models"
)

// DefaultPageSize is the number of raw trips shown per request
const DefaultPageSize = 5

// Pager shows successive slices of a table's raw rows
type Pager struct {
	Table    *dataset.Table
	PageSize int
	Cursor   int
}

// NewPager creates a pager positioned at the first row
func NewPager(table *dataset.Table, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{Table: table, PageSize: pageSize}
}

// Next returns the rows at the cursor and advances it by one page.
// Once the cursor passes the end every call returns an empty slice.
func (p *Pager) Next() []models.Trip {
	page := p.Table.Page(p.Cursor, p.PageSize)
	p.Cursor += p.PageSize
	return page
}

// Run asks whether to show trips until the user answers "no"
func (p *Pager) Run(pr *prompt.Prompter, out io.Writer) error {
	for {
		more, err := pr.YesNo(
			"Would you like to view individual trip data? Type \"yes\" or \"no\"",
			"\nSorry, please input yes or no!",
		)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		start := p.Cursor
		page := p.Next()
		if len(page) == 0 {
			fmt.Fprintln(out, "No more trips to show.")
			continue
		}
		for i := range page {
			writeTrip(out, p.Table.Header, start+i, &page[i])
		}
	}
}

// writeTrip prints one row as a block of "column: value" lines
func writeTrip(out io.Writer, header []string, row int, trip *models.Trip) {
	fmt.Fprintf(out, "\nTrip #%d\n", row+1)
	for i, col := range header {
		if col == "" {
			col = "Id"
		}
		var value string
		if i < len(trip.Raw) {
			value = trip.Raw[i]
		}
		fmt.Fprintf(out, "  %s: %s\n", col, value)
	}
	fmt.Fprintf(out, "  month: %d\n", int(trip.Month))
	fmt.Fprintf(out, "  day_of_week: %s\n", trip.Weekday)
}
