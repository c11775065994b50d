package main

import (
	"fmt"

	"github.com/jgoulah/bikeshare/internal/generate"
	"github.com/jgoulah/bikeshare/pkg/models"
	"github.com/spf13/cobra"
)

var (
	generateRows     int
	generateStations int
	generateSeed     int64
)

var generateCmd = &cobra.Command{
	Use:   "generate [city...]",
	Short: "Generate synthetic trip data",
	Long: `Writes synthetic trip CSV files into the data directory using the same
columns as the published datasets. Without arguments every city is generated.

Available cities: chicago, "new york city", washington`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateRows, "rows", 1000, "Number of trips per city")
	generateCmd.Flags().IntVar(&generateStations, "stations", 20, "Number of distinct stations per city")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 42, "Random seed")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cities := args
	if len(cities) == 0 {
		cities = models.CityKeys()
	}

	for i, city := range cities {
		path, err := generate.WriteFile(cfg.GetDataDir(), city, generate.Options{
			Rows:     generateRows,
			Stations: generateStations,
			Seed:     generateSeed + int64(i),
		})
		if err != nil {
			return fmt.Errorf("generating %s: %w", city, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d trips to %s\n", generateRows, path)
	}

	return nil
}
