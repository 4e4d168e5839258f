package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"vsdash/internal/config"
	"vsdash/pkg/contracts"
)

// HealthService reports whether the dashboard can serve meaningful data.
type HealthService struct {
	version      string
	paths        *config.Paths
	dashboardDir string
	startTime    time.Time
	logger       *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Version   string                   `json:"version"`
	Runtime   map[string]interface{}   `json:"runtime,omitempty"`
	Services  map[string]ServiceHealth `json:"services,omitempty"`
}

// ServiceHealth represents individual service health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// NewHealthService creates a new health service with injected dependencies
func NewHealthService(version string, paths *config.Paths, dashboardDir string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:      version,
		paths:        paths,
		dashboardDir: dashboardDir,
		startTime:    time.Now(),
		logger:       logger,
	}
}

// HealthCheck returns overall health status. The server is "ok" only when
// both the dashboard assets and the merged table are present.
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   hs.version,
		Runtime: map[string]interface{}{
			"uptime_seconds": time.Since(hs.startTime).Seconds(),
			"go_version":     runtime.Version(),
			"goroutines":     runtime.NumGoroutine(),
		},
		Services: map[string]ServiceHealth{
			"dashboard": hs.checkDashboard(),
			"data":      hs.checkData(),
		},
	}

	for _, svc := range status.Services {
		if svc.Status != "ready" {
			status.Status = "degraded"
			break
		}
	}

	hs.logger.DebugContext(ctx, "HealthCheck: completed", slog.String("status", status.Status))
	return status
}

// Version returns version information
func (hs *HealthService) Version() map[string]interface{} {
	info := contracts.GetVersionInfo()
	return map[string]interface{}{
		"version":     hs.version,
		"build_time":  info.BuildTime,
		"git_commit":  info.GitCommit,
		"data_format": info.DataFormat,
		"go_version":  info.GoVersion,
		"os":          info.OS,
		"arch":        info.Architecture,
		"start_time":  hs.startTime.UTC().Format(time.RFC3339),
	}
}

func (hs *HealthService) checkDashboard() ServiceHealth {
	if missing := config.MissingFiles(hs.dashboardDir, config.DashboardFiles); len(missing) > 0 {
		return ServiceHealth{
			Status:  "not_ready",
			Message: fmt.Sprintf("missing dashboard files: %v", missing),
		}
	}
	return ServiceHealth{Status: "ready"}
}

func (hs *HealthService) checkData() ServiceHealth {
	if !config.FileExists(hs.paths.MergedCSV) {
		return ServiceHealth{
			Status:  "not_ready",
			Message: fmt.Sprintf("merged dataset not found: %s", hs.paths.MergedCSV),
		}
	}
	return ServiceHealth{Status: "ready"}
}
