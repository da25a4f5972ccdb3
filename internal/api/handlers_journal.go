package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	respond "github.com/wellnest/wellnest/internal/api/respond"
	"github.com/wellnest/wellnest/internal/services"
)

// JournalHandler is a thin HTTP transport over the JournalService.
type JournalHandler struct {
	svc *services.JournalService
}

func NewJournalHandler(svc *services.JournalService) *JournalHandler {
	return &JournalHandler{svc: svc}
}

// CreateEntry POST /api/journal-entries
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content   string `json:"content"`
		MoodValue *int   `json:"moodValue,omitempty"`
		Date      string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateEntry(r.Context(), req.Content, req.MoodValue, req.Date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListEntries GET /api/journal-entries?limit=N or ?startDate=...&endDate=...
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("startDate") != "" || q.Get("endDate") != "" {
		out, err := h.svc.EntriesByDateRange(r.Context(), q.Get("startDate"), q.Get("endDate"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		respond.WriteJSON(w, http.StatusOK, out)
		return
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respond.WriteBadRequest(w, "Invalid limit")
			return
		}
		limit = n
	}
	out, err := h.svc.Entries(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
