// Package app wires the dashboard server: configuration, handlers,
// middleware and the HTTP server lifecycle.
//
// Startup fails before binding a port if the dashboard directory is missing
// any of index.html, styles.css or dashboard.js. The server is not required
// to have a merged dataset; /api/health reports "degraded" until the
// pipeline has run.
//
// Usage:
//
//	application, err := app.NewApplication(cfg, providers, logger)
//	if err != nil {
//	    return err
//	}
//	return application.Run(ctx)
//
// Run stops on SIGINT or SIGTERM, draining in-flight requests within
// Server.ShutdownTimeout.
package app
