package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	respond "github.com/wellnest/wellnest/internal/api/respond"
	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/services"
)

// HabitHandler is a thin HTTP transport over the HabitService.
type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler { return &HabitHandler{svc: svc} }

// ListHabits GET /api/habits
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListHabits(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// CreateHabit POST /api/habits
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Icon     string `json:"icon"`
		Target   string `json:"target"`
		Color    string `json:"color"`
		IsActive *bool  `json:"isActive,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateHabit(r.Context(), req.Name, req.Icon, req.Target, req.Color, req.IsActive)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// UpdateHabit PATCH /api/habits/{id}
func (h *HabitHandler) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid habit id")
		return
	}
	var upd model.HabitUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.UpdateHabit(r.Context(), id, upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ListEntriesByDate GET /api/habit-entries/{date}
func (h *HabitHandler) ListEntriesByDate(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.HabitEntriesByDate(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ToggleEntry PUT /api/habit-entries/{habitId}/{date}
func (h *HabitHandler) ToggleEntry(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	habitID, err := strconv.ParseInt(vars["habitId"], 10, 64)
	if err != nil {
		respond.WriteBadRequest(w, "Invalid habit id")
		return
	}
	var req struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.ToggleHabitEntry(r.Context(), habitID, vars["date"], req.Completed)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
