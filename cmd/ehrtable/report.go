package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/ehrtable/internal/config"
	ehrlog "github.com/nao1215/ehrtable/internal/log"
	"github.com/nao1215/ehrtable/internal/pipeline"
)

// runReportCmd executes the report build.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := ehrlog.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runReport(ctx, cmd, cfg, logger)
}

// runReport builds the report described by cfg.
func runReport(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	run := pipeline.NewRun(cfg)

	logger.Info("starting report",
		"run_id", run.ID,
		"input", cfg.InputPath,
		"output", cfg.OutputPath,
		"markdown", cfg.MarkdownPath,
	)

	p := pipeline.ReportBuilder(cfg, cmd.OutOrStdout(), pipeline.WithLogger(logger))
	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	logger.Info("report complete",
		"run_id", run.ID,
		"rows", run.Table.Len(),
		"unmapped", run.Summary.Unmapped,
	)
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the configuration file and
// cobra command flags, in that order of precedence from lowest to highest.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	// Flags given on the command line win over the config file
	for flag, dst := range map[string]*string{
		"input":    &cfg.InputPath,
		"output":   &cfg.OutputPath,
		"markdown": &cfg.MarkdownPath,
	} {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		if *dst, err = cmd.Flags().GetString(flag); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}
