package http

import (
	"log/slog"
	"net/http"
	"os"

	"vsdash/internal/config"
	apperrors "vsdash/internal/errors"
)

// CheckDashboard verifies the dashboard directory holds every required
// asset. It reports all missing files at once.
func CheckDashboard(dir string) error {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return apperrors.NewPresentationError(dir, config.DashboardFiles)
	}
	if missing := config.MissingFiles(dir, config.DashboardFiles); len(missing) > 0 {
		return apperrors.NewPresentationError(dir, missing)
	}
	return nil
}

// DashboardHandler serves the static dashboard and the merged table it reads.
type DashboardHandler struct {
	dir    string
	paths  *config.Paths
	logger *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dir string, paths *config.Paths, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dir:    dir,
		paths:  paths,
		logger: logger.With(slog.String("handler", "dashboard")),
	}
}

// Static serves files under the dashboard directory. Mount it at
// "/dashboard/*".
func (h *DashboardHandler) Static() http.Handler {
	return http.StripPrefix("/dashboard/", http.FileServer(http.Dir(h.dir)))
}

// MergedDataset handles GET /merged_dataset.csv
func (h *DashboardHandler) MergedDataset(w http.ResponseWriter, r *http.Request) {
	if !config.FileExists(h.paths.MergedCSV) {
		h.logger.WarnContext(r.Context(), "merged dataset requested before pipeline ran",
			slog.String("path", h.paths.MergedCSV))
		apperrors.WriteError(w, apperrors.NotFoundError("merged dataset"))
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, h.paths.MergedCSV)
}

// RedirectToDashboard redirects root requests to the dashboard
func RedirectToDashboard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard/", http.StatusTemporaryRedirect)
}
