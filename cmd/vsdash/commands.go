package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"vsdash/internal/app"
	"vsdash/internal/config"
	"vsdash/internal/dataprocessing"
	"vsdash/internal/services"
)

// newProcessCmd creates the process subcommand.
func newProcessCmd(opts *globalOptions) *cobra.Command {
	var (
		dataDir    string
		outputDir  string
		startYear  int
		endYear    int
		noWorkbook bool
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Clean, aggregate and merge both datasets",
		Long: "Read the eruption and streaming sources, align them by week and write the\n" +
			"cleaned, weekly and merged tables plus summary.json to the output directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg, logger, providers, err := setup(cmd, opts, func(cfg *config.Config) {
				if flags.Changed("data-dir") {
					cfg.Pipeline.DataDir = dataDir
				}
				if flags.Changed("output-dir") {
					cfg.Pipeline.OutputDir = outputDir
				}
				if flags.Changed("start-year") {
					cfg.Pipeline.StartYear = startYear
				}
				if flags.Changed("end-year") {
					cfg.Pipeline.EndYear = endYear
				}
				if noWorkbook {
					cfg.Pipeline.WriteWorkbook = false
				}
			})
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			defer shutdownTelemetry(ctx, providers, logger)

			service, err := services.NewPipelineService(cfg.Pipeline, providers, logger)
			if err != nil {
				return err
			}
			service.Paths().LogPathResolution(logger)

			result, err := service.Run(ctx)
			if err != nil {
				return err
			}

			if cfg.Telemetry.MetricsFile != "" {
				if err := providers.WriteTextfile(cfg.Telemetry.MetricsFile); err != nil {
					logger.WarnContext(ctx, "Failed to write metrics textfile", slog.String("error", err.Error()))
				}
			}

			out := cmd.OutOrStdout()
			if err := dataprocessing.WriteSummary(out, result.Summary); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nOutputs written to %s\n", service.Paths().OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dataDir, "data-dir", "d", "", "Directory holding the source CSV files")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for generated files")
	cmd.Flags().IntVar(&startYear, "start-year", 0, "First year kept (inclusive)")
	cmd.Flags().IntVar(&endYear, "end-year", 0, "Last year kept (inclusive)")
	cmd.Flags().BoolVar(&noWorkbook, "no-workbook", false, "Skip the merged_dataset.xlsx workbook")

	return cmd
}

// newServeCmd creates the serve subcommand.
func newServeCmd(opts *globalOptions) *cobra.Command {
	var (
		port         int
		dashboardDir string
		outputDir    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard",
		Long: "Serve the static dashboard, the merged weekly table and the summary API.\n" +
			"Fails before binding the port if dashboard files are missing.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg, logger, providers, err := setup(cmd, opts, func(cfg *config.Config) {
				if flags.Changed("port") {
					cfg.Server.Port = port
				}
				if flags.Changed("dashboard-dir") {
					cfg.Server.DashboardDir = dashboardDir
				}
				if flags.Changed("output-dir") {
					cfg.Pipeline.OutputDir = outputDir
				}
			})
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			defer shutdownTelemetry(ctx, providers, logger)

			application, err := app.NewApplication(cfg, providers, logger)
			if err != nil {
				logger.ErrorContext(ctx, "Failed to initialize application", slog.String("error", err.Error()))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dashboard available at http://localhost:%d/dashboard/\n", cfg.Server.Port)
			return application.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on")
	cmd.Flags().StringVar(&dashboardDir, "dashboard-dir", "", "Directory holding index.html, styles.css and dashboard.js")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory holding merged_dataset.csv")

	return cmd
}

// newSummaryCmd creates the summary subcommand.
func newSummaryCmd(opts *globalOptions) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print summary statistics of an existing merged table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg, logger, providers, err := setup(cmd, opts, func(cfg *config.Config) {
				if flags.Changed("output-dir") {
					cfg.Pipeline.OutputDir = outputDir
				}
			})
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			defer shutdownTelemetry(ctx, providers, logger)

			doc, err := services.NewSummaryService(cfg.Pipeline, logger).FromMerged(ctx)
			if err != nil {
				return fmt.Errorf("cannot summarize %s: %w",
					config.NewPaths(cfg.Pipeline).MergedCSV, err)
			}
			return dataprocessing.WriteSummary(cmd.OutOrStdout(), doc.Summary)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory holding merged_dataset.csv")

	return cmd
}

