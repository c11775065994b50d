package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jgoulah/bikeshare/internal/dataset"
	"github.com/jgoulah/bikeshare/pkg/models"
	"github.com/spf13/cobra"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List available cities and their data files",
	Args:  cobra.NoArgs,
	RunE:  runCities,
}

func init() {
	rootCmd.AddCommand(citiesCmd)
}

func runCities(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	loader := dataset.NewLoader(cfg.GetDataDir())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "----------------------------------------")
	fmt.Fprintf(out, "%-15s  %-25s  %s\n", "City", "File", "Size")
	fmt.Fprintln(out, "----------------------------------------")

	for _, key := range models.CityKeys() {
		path, err := loader.Path(key)
		if err != nil {
			return err
		}

		size := "missing"
		info, err := os.Stat(path)
		switch {
		case err == nil:
			size = humanize.Bytes(uint64(info.Size()))
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("checking %s: %w", path, err)
		}

		fmt.Fprintf(out, "%-15s  %-25s  %s\n", key, path, size)
	}

	return nil
}
