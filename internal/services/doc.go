// Package services holds the application services behind the CLI and the
// dashboard server.
//
//   - PipelineService runs the full volcano/Spotify alignment and writes
//     every output file
//   - SummaryService loads the dashboard statistics, falling back to the
//     merged table when summary.json is absent
//   - HealthService reports whether dashboard assets and data are in place
//
// Services take their dependencies through constructors and log through an
// injected *slog.Logger.
package services
