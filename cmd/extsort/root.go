package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/extsort/internal/check"
	"github.com/backmassage/extsort/internal/config"
	"github.com/backmassage/extsort/internal/display"
	"github.com/backmassage/extsort/internal/logging"
	"github.com/backmassage/extsort/internal/pipeline"
)

// reportedError wraps an error that was already written through the logger,
// so main exits non-zero without printing it a second time.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// runMode selects what a command does once the config is loaded.
type runMode int

const (
	modeSort runMode = iota
	modePlan
	modeCheck
)

func newRootCommand() *cobra.Command {
	var flags *config.Flags

	rootCmd := &cobra.Command{
		Use:           "extsort [source_dir]",
		Short:         "Sort files into directories named after their extension",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args, modeSort)
		},
	}

	flags = config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "plan [source_dir]",
		Short: "Print the move plan without touching any file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args, modePlan)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check [source_dir]",
		Short: "Check that the source and destination directories are usable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, args, modeCheck)
		},
	})

	return rootCmd
}

// loadConfig layers defaults, the config file, flags and the positional
// argument, then resolves directory defaults against the working directory.
func loadConfig(flags *config.Flags, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if err := config.LoadFile(flags.ConfigPath, &cfg); err != nil {
		return nil, err
	}
	flags.Apply(&cfg)
	config.ApplyArgs(&cfg, args)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	cfg.Finalize(cwd)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func run(cmd *cobra.Command, flags *config.Flags, args []string, mode runMode) error {
	cfg, err := loadConfig(flags, args)
	if err != nil {
		return err
	}
	switch mode {
	case modePlan:
		cfg.DryRun = true
	case modeCheck:
		cfg.CheckOnly = true
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner(cmd.OutOrStdout())

	if cfg.CheckOnly {
		if !check.RunCheck(cfg, log) {
			return reportedError{errors.New("directory check failed")}
		}
		return nil
	}

	log.Info("=== extsort v%s ===", version)
	log.Info("Source:      %s", cfg.SourceDir)
	log.Info("Destination: %s", cfg.DestinationDir)
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	log.Info("")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := pipeline.Run(ctx, cfg, log); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("Interrupted; remaining files were left in place")
		} else {
			log.Error("%v", err)
		}
		return reportedError{err}
	}
	return nil
}
