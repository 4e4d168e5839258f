// Package http contains the dashboard server's HTTP handlers.
//
// Routes (mounted by internal/app):
//
//	GET /                    redirect to /dashboard/
//	GET /dashboard/*         static dashboard assets
//	GET /merged_dataset.csv  merged weekly table
//	GET /api/summary         summary statistics as JSON
//	GET /api/health          dashboard and data readiness
//	GET /api/version         build information
//
// Errors use the JSON envelope from internal/errors.
package http
