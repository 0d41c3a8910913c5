package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/backmassage/exifdate/internal/check"
	"github.com/backmassage/exifdate/internal/config"
	"github.com/backmassage/exifdate/internal/display"
	"github.com/backmassage/exifdate/internal/exiftool"
	"github.com/backmassage/exifdate/internal/logging"
	"github.com/backmassage/exifdate/internal/pipeline"
	"github.com/backmassage/exifdate/internal/runlock"
)

func newRootCommand() *cobra.Command {
	var flags *config.Flags

	rootCmd := &cobra.Command{
		Use:           "exifdate [flags] <root_dir>",
		Short:         "Set photo and video capture dates from their file names",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if err := config.LoadFile(flags.ConfigPath(), &cfg); err != nil {
				return err
			}
			flags.Apply(cmd.Flags(), &cfg, args)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return execute(cmd, &cfg)
		},
	}

	flags = config.BindFlags(rootCmd.Flags())
	return rootCmd
}

// execute runs either diagnostics or the batch. Errors returned from here
// have already been logged and only carry an exit code.
func execute(cmd *cobra.Command, cfg *config.Config) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	log, err := logging.NewLoggerTo(cfg, stderr)
	if err != nil {
		return err
	}
	defer log.Close()

	runID := uuid.NewString()
	log.SetRunID(runID)
	log.Debug("exifdate %s (%s) run %s", version, commit, runID)
	if cfg.ConfigFile != "" {
		log.Debug("Config: %s", cfg.ConfigFile)
	}

	if cfg.CheckOnly {
		display.PrintBanner(stdout)
		if !check.RunCheck(cfg, log) {
			return &exitError{code: exitFailure}
		}
		return nil
	}

	root, err := pipeline.ResolveRoot(cfg.RootDir)
	if err != nil {
		log.Error("%v", err)
		return &exitError{code: exitFailure}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	stop := notifyInterrupt(ctx, cancel, log)
	defer stop()

	if !cfg.DryRun {
		// exiftool is started lazily; a missing binary fails each file instead.
		if err := check.CheckDeps(cfg); err != nil {
			log.Warn("%v", err)
		}
		if cfg.LockDir == "" {
			log.Debug("Lock: disabled")
		} else {
			lock, err := acquireLock(ctx, cfg, root, log)
			if err != nil {
				if ctx.Err() != nil {
					return &exitError{code: exitInterrupted}
				}
				log.Warn("Running without lock: %v", err)
			}
			defer lock.Release()
		}
	}

	w := exiftool.NewWriter(cfg.ExiftoolPath)
	defer w.Close()

	stats := pipeline.Run(ctx, cfg, root, log, w, pipeline.NewReporterTo(stdout, stderr, log))

	if cfg.ShowSummary {
		_, _ = io.WriteString(stderr, display.SummaryTable(stats, cfg.DryRun)+"\n")
	}
	if ctx.Err() != nil {
		return &exitError{code: exitInterrupted}
	}
	return nil
}

// acquireLock takes the per-root run lock, waiting for a concurrent run on
// the same root to finish.
func acquireLock(ctx context.Context, cfg *config.Config, root string, log *logging.Logger) (*runlock.Lock, error) {
	lock, held, err := runlock.TryAcquire(cfg.LockDir, root)
	if err != nil {
		return nil, err
	}
	if held {
		log.Debug("Lock: %s", lock.Path())
		return lock, nil
	}
	log.Info("Another run is updating %s, waiting...", root)
	lock, err = runlock.Acquire(ctx, cfg.LockDir, root)
	if err != nil {
		return nil, err
	}
	return lock, nil
}

// notifyInterrupt cancels ctx on SIGINT/SIGTERM so the batch stops between
// files. The returned func stops listening.
func notifyInterrupt(ctx context.Context, cancel context.CancelFunc, log *logging.Logger) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing current file...")
			cancel()
		case <-ctx.Done():
		}
	}()
	return func() { signal.Stop(sigCh) }
}
