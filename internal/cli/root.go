// Package cli implements the sleeplog command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yourname/sleeplog/internal"
	"github.com/yourname/sleeplog/internal/config"
	"github.com/yourname/sleeplog/internal/storage"
)

// deps is filled in by the root PersistentPreRunE before any subcommand runs.
type deps struct {
	cfg    *config.Config
	logger internal.Logger
	repo   storage.SleepLogRepository

	fileFlag   string
	windowFlag int
}

func NewRootCmd() *cobra.Command {
	d := &deps{}

	root := &cobra.Command{
		Use:   "sleeplog",
		Short: "Sleep pattern logger with advice",
		Long: `sleeplog records when you went to sleep and woke up, keeps the history in a
JSON file, and summarizes your recent nights with simple advice.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return d.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if d.logger != nil {
				_ = d.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&d.fileFlag, "file", "f", "", "Path to the sleep log file (overrides SLEEPLOG_FILE)")

	root.AddCommand(newLogCmd(d))
	root.AddCommand(newHistoryCmd(d))
	root.AddCommand(newAdviceCmd(d))
	root.AddCommand(newServeCmd(d))
	return root
}

func (d *deps) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("file") {
		cfg.File = d.fileFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := internal.NewLogger(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return err
	}

	repo, err := storage.NewFileStorage(cfg.File, logger)
	if err != nil {
		return err
	}

	d.cfg = cfg
	d.logger = logger
	d.repo = repo
	return nil
}

// window resolves the --window flag against the configured default. An
// explicit non-positive value is rejected rather than replaced.
func (d *deps) window(cmd *cobra.Command) (int, error) {
	if !cmd.Flags().Changed("window") {
		return d.cfg.Window, nil
	}
	if d.windowFlag <= 0 {
		return 0, fmt.Errorf("--window must be positive, got %d", d.windowFlag)
	}
	return d.windowFlag, nil
}

func addWindowFlag(cmd *cobra.Command, d *deps) {
	cmd.Flags().IntVarP(&d.windowFlag, "window", "n", 0, "Number of most recent entries to summarize (default from SLEEPLOG_WINDOW, 7)")
}
