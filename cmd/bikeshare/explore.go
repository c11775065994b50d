package main

import (
	"fmt"

	"github.com/jgoulah/bikeshare/internal/dataset"
	"github.com/jgoulah/bikeshare/internal/prompt"
	"github.com/jgoulah/bikeshare/internal/report"
	"github.com/jgoulah/bikeshare/internal/session"
	"github.com/spf13/cobra"
)

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.GetLogLevel(), cmd.ErrOrStderr())
	logger.Debug("config loaded", "path", getConfigPath(), "data_dir", cfg.GetDataDir())

	loader := dataset.NewLoader(cfg.GetDataDir())
	if isTerminal(cmd.ErrOrStderr()) {
		loader.Progress = cmd.ErrOrStderr()
	}

	out := cmd.OutOrStdout()
	driver := &session.Driver{
		Prompter: prompt.New(cmd.InOrStdin(), out),
		Loader:   loader,
		Reporter: report.New(out, logger),
		Out:      out,
		Logger:   logger,
		PageSize: cfg.GetPageSize(),
	}

	return driver.Run(cmd.Context())
}
