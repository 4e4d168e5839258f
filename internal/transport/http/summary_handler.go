package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	apperrors "vsdash/internal/errors"
	"vsdash/internal/services"
)

// SummaryHandler handles summary statistics requests
type SummaryHandler struct {
	service *services.SummaryService
	logger  *slog.Logger
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(service *services.SummaryService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "summary")),
	}
}

// GetSummary handles GET /api/summary
func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.Summary(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoMergedData) {
			apperrors.WriteError(w, apperrors.NotFoundError("summary"))
			return
		}
		h.logger.ErrorContext(r.Context(), "Failed to load summary",
			slog.String("error", err.Error()))
		apperrors.WriteError(w, apperrors.FileSystemError("loading summary", err))
		return
	}
	render.JSON(w, r, doc)
}
