package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jgoulah/bikeshare/internal/config"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a config file with the current settings",
	Long:  `Writes the effective settings (file, environment and flags combined) to the config file so later runs pick them up.`,
	Args:  cobra.NoArgs,
	RunE:  runInitConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(configCmd)
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := getConfigPath()
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out := &config.Config{
		DataDir:  cfg.GetDataDir(),
		LogLevel: cfg.GetLogLevel(),
		PageSize: cfg.GetPageSize(),
	}
	if err := config.Save(path, out); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Config written to %s\n", path)
	return nil
}
