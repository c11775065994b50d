// Package session runs the interactive explore loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jgoulah/bikeshare/internal/dataset"
	"github.com/jgoulah/bikeshare/internal/prompt"
	"github.com/jgoulah/bikeshare/internal/report"
	"github.com/jgoulah/bikeshare/pkg/models"
)

// Loader loads the filtered trip table for a selection
type Loader interface {
	Load(ctx context.Context, sel models.Selection) (*dataset.Table, error)
}

// Driver runs prompt, load, reports and paging until the user stops
type Driver struct {
	Prompter *prompt.Prompter
	Loader   Loader
	Reporter *report.Reporter
	Out      io.Writer
	Logger   *slog.Logger
	PageSize int
}

// Run loops over sessions until the user declines to restart or input ends.
// Data errors end the loop and are returned.
func (d *Driver) Run(ctx context.Context) error {
	for {
		restart, err := d.once(ctx)
		if errors.Is(err, io.EOF) {
			d.logger().Debug("input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// once runs a single session and reports whether the user asked to restart
func (d *Driver) once(ctx context.Context) (bool, error) {
	log := d.logger().With("session_id", uuid.NewString())

	sel, err := d.Prompter.Filters()
	if err != nil {
		return false, err
	}
	log = log.With("selection", sel.String())
	log.Info("session started")

	start := time.Now()
	table, err := d.Loader.Load(ctx, sel)
	if err != nil {
		return false, fmt.Errorf("loading %s trips: %w", sel.City, err)
	}
	log.Info("trips loaded", "rows", table.Len(), "duration_ms", time.Since(start).Milliseconds())

	fmt.Fprintf(d.Out, "Filters: %s, month: %s, day: %s (%d trips)\n",
		prompt.Title(sel.City), prompt.Title(sel.Month), prompt.Title(sel.Day), table.Len())

	d.Reporter.All(table)

	if err := NewPager(table, d.PageSize).Run(d.Prompter, d.Out); err != nil {
		return false, err
	}

	answer, err := d.Prompter.Raw("\nWould you like to restart? Enter yes or no.")
	if err != nil {
		return false, err
	}
	restart := strings.EqualFold(answer, "yes")
	log.Info("session finished", "restart", restart)
	return restart, nil
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}
