package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vsdash/internal/config"
)

func TestHealthService_HealthCheck(t *testing.T) {
	root := t.TempDir()
	dashboard := filepath.Join(root, "dashboard")
	require.NoError(t, os.MkdirAll(dashboard, 0755))

	cfg := config.Default().Pipeline
	cfg.OutputDir = filepath.Join(root, "output")
	paths := config.NewPaths(cfg)
	hs := NewHealthService("1.2.3", paths, dashboard, nil)

	status := hs.HealthCheck(context.Background())
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "not_ready", status.Services["dashboard"].Status)
	assert.Equal(t, "not_ready", status.Services["data"].Status)
	assert.Contains(t, status.Services["dashboard"].Message, "dashboard.js")

	for _, name := range config.DashboardFiles {
		require.NoError(t, os.WriteFile(filepath.Join(dashboard, name), []byte("x"), 0644))
	}
	require.NoError(t, os.MkdirAll(cfg.OutputDir, 0755))
	require.NoError(t, os.WriteFile(paths.MergedCSV, []byte(expectedMerged), 0644))

	status = hs.HealthCheck(context.Background())
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "1.2.3", status.Version)
	assert.Contains(t, status.Runtime, "go_version")
}

func TestHealthService_Version(t *testing.T) {
	hs := NewHealthService("2.0.0", config.NewPaths(config.Default().Pipeline), "dashboard", nil)
	v := hs.Version()
	assert.Equal(t, "2.0.0", v["version"])
	assert.NotEmpty(t, v["go_version"])
}
