package api

import (
	"net/http"
	"time"

	respond "github.com/wellnest/wellnest/internal/api/respond"
	"github.com/wellnest/wellnest/internal/services"
	"github.com/wellnest/wellnest/internal/validate"
)

// AnalyticsHandler is a thin HTTP transport over the AnalyticsService.
type AnalyticsHandler struct {
	svc *services.AnalyticsService
}

func NewAnalyticsHandler(svc *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// GetAnalytics GET /api/analytics?date=YYYY-MM-DD
// The date parameter defaults to the current UTC calendar date.
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	today := r.URL.Query().Get("date")
	if today == "" {
		today = time.Now().UTC().Format(validate.DateLayout)
	}
	out, err := h.svc.Summary(r.Context(), today)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
