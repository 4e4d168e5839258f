// Package main provides the vsdash CLI entry point.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vsdash/internal/config"
	"vsdash/internal/infrastructure"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configFile string
	logLevel   string
}

// newRootCmd creates the root command for the vsdash CLI.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "vsdash",
		Short: "Align volcanic eruptions with weekly streaming charts",
		Long: "vsdash cleans a volcanic eruption dataset and a weekly music streaming chart,\n" +
			"aligns both on a Monday-Sunday weekly grid and serves the merged table to a\n" +
			"static dashboard.",
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("vsdash version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newProcessCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newSummaryCmd(opts))

	return rootCmd
}

// execute runs the root command and prints a failure to stderr.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// loadConfig loads configuration and applies the global flag overrides.
func loadConfig(opts *globalOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(opts.logLevel)
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	return cfg, nil
}

// newLogger builds the command logger. Console logs go to the command's
// stderr so stdout only carries results.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	if cfg.Logging.Output == "console" {
		return infrastructure.NewLogger(cfg.Logging, cmd.ErrOrStderr()), nil
	}
	return infrastructure.InitializeLogger(cfg.Logging)
}

// setup loads config, builds the logger and initializes telemetry.
func setup(cmd *cobra.Command, opts *globalOptions, override func(*config.Config)) (*config.Config, *slog.Logger, *infrastructure.OTelProviders, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, nil, err
	}
	if override != nil {
		override(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, nil, nil, fmt.Errorf("invalid flags: %w", err)
		}
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	providers, err := infrastructure.InitializeOTel(infrastructure.OTelConfigFrom(cfg.Telemetry), logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}
	return cfg, logger, providers, nil
}

func shutdownTelemetry(ctx context.Context, providers *infrastructure.OTelProviders, logger *slog.Logger) {
	if err := providers.Shutdown(context.WithoutCancel(ctx)); err != nil {
		logger.WarnContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
	}
	if err := infrastructure.CloseLogFile(); err != nil {
		logger.WarnContext(ctx, "Error closing log file", slog.String("error", err.Error()))
	}
}
