package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/wellnest/wellnest/internal/api/respond"
	"github.com/wellnest/wellnest/internal/services"
)

// MoodHandler is a thin HTTP transport over the MoodService.
type MoodHandler struct {
	svc *services.MoodService
}

func NewMoodHandler(svc *services.MoodService) *MoodHandler { return &MoodHandler{svc: svc} }

// CreateMood POST /api/moods
func (h *MoodHandler) CreateMood(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Value int     `json:"value"`
		Note  *string `json:"note,omitempty"`
		Date  string  `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.RecordMood(r.Context(), req.Value, req.Note, req.Date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// GetMoodByDate GET /api/moods/{date}
func (h *MoodHandler) GetMoodByDate(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetMoodByDate(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ListMoods GET /api/moods?startDate=...&endDate=...
func (h *MoodHandler) ListMoods(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	out, err := h.svc.GetMoodsByDateRange(r.Context(), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
