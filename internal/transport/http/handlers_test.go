package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vsdash/internal/config"
	apperrors "vsdash/internal/errors"
	"vsdash/internal/services"
)

const mergedFixture = `period,eruption_count,avg_vei,max_vei,total_streams,track_count,top_genre
2021-03-01/2021-03-07,2,2.0,4.0,1500,2,pop
2021-03-08/2021-03-14,0,0.0,0.0,200,1,rock
`

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writeDashboard(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("<!-- "+name+" -->"), 0644))
	}
	return dir
}

func testPipelineConfig(t *testing.T, merged bool) config.PipelineConfig {
	t.Helper()
	cfg := config.Default().Pipeline
	cfg.DataDir = t.TempDir()
	cfg.OutputDir = t.TempDir()
	if merged {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.OutputDir, config.MergedFile), []byte(mergedFixture), 0644))
	}
	return cfg
}

func TestCheckDashboard(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		missing []string
	}{
		{
			name:  "all present",
			files: config.DashboardFiles,
		},
		{
			name:    "missing script",
			files:   []string{"index.html", "styles.css"},
			missing: []string{"dashboard.js"},
		},
		{
			name:    "empty directory",
			missing: config.DashboardFiles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDashboard(writeDashboard(t, tt.files...))
			if tt.missing == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrPresentationMissing)

			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperrors.ErrTypePresentation, appErr.Type)
			for _, name := range tt.missing {
				assert.Contains(t, err.Error(), name)
			}
		})
	}
}

func TestCheckDashboard_MissingDirectory(t *testing.T) {
	err := CheckDashboard(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, apperrors.ErrPresentationMissing)
}

func newDashboardRouter(t *testing.T, merged bool) (*chi.Mux, string) {
	t.Helper()
	dir := writeDashboard(t, config.DashboardFiles...)
	cfg := testPipelineConfig(t, merged)
	h := NewDashboardHandler(dir, config.NewPaths(cfg), discard())

	r := chi.NewRouter()
	r.Get("/", RedirectToDashboard)
	r.Handle("/dashboard/*", h.Static())
	r.Get("/merged_dataset.csv", h.MergedDataset)
	return r, dir
}

func TestDashboardHandler_Static(t *testing.T) {
	r, _ := newDashboardRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/dashboard.js", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard.js")
}

func TestDashboardHandler_Redirect(t *testing.T) {
	r, _ := newDashboardRouter(t, true)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/dashboard/", rec.Header().Get("Location"))
}

func TestDashboardHandler_MergedDataset(t *testing.T) {
	tests := []struct {
		name   string
		merged bool
		status int
	}{
		{name: "served", merged: true, status: http.StatusOK},
		{name: "not yet generated", merged: false, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newDashboardRouter(t, tt.merged)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/merged_dataset.csv", nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.merged {
				assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
				assert.Equal(t, mergedFixture, rec.Body.String())
			}
		})
	}
}

func TestSummaryHandler_GetSummary(t *testing.T) {
	cfg := testPipelineConfig(t, true)
	h := NewSummaryHandler(services.NewSummaryService(cfg, discard()), discard())

	rec := httptest.NewRecorder()
	h.GetSummary(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		StartYear int `json:"start_year"`
		Summary   struct {
			TotalPeriods    int     `json:"total_periods"`
			TotalEruptions  int     `json:"total_eruptions"`
			MaxVEI          float64 `json:"max_vei"`
			TotalStreams    int64   `json:"total_streams"`
			MostCommonGenre string  `json:"most_common_genre"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2017, body.StartYear)
	assert.Equal(t, 2, body.Summary.TotalPeriods)
	assert.Equal(t, 2, body.Summary.TotalEruptions)
	assert.Equal(t, 4.0, body.Summary.MaxVEI)
	assert.Equal(t, int64(1700), body.Summary.TotalStreams)
	assert.Equal(t, "pop", body.Summary.MostCommonGenre)
}

func TestSummaryHandler_NoData(t *testing.T) {
	cfg := testPipelineConfig(t, false)
	h := NewSummaryHandler(services.NewSummaryService(cfg, discard()), discard())

	rec := httptest.NewRecorder()
	h.GetSummary(rec, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "NOT_FOUND", body.Error.ErrorCode)
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		merged bool
		status string
	}{
		{name: "ready", merged: true, status: "ok"},
		{name: "no data", merged: false, status: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testPipelineConfig(t, tt.merged)
			dir := writeDashboard(t, config.DashboardFiles...)
			svc := services.NewHealthService(config.AppVersion, config.NewPaths(cfg), dir, discard())
			h := NewHealthHandler(svc, discard())

			rec := httptest.NewRecorder()
			h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
			require.Equal(t, http.StatusOK, rec.Code)

			var body services.HealthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, "ready", body.Services["dashboard"].Status)
		})
	}
}

func TestHealthHandler_Version(t *testing.T) {
	cfg := testPipelineConfig(t, false)
	svc := services.NewHealthService("9.9.9", config.NewPaths(cfg), t.TempDir(), discard())
	h := NewHealthHandler(svc, discard())

	rec := httptest.NewRecorder()
	h.Version(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "9.9.9", body["version"])
}
