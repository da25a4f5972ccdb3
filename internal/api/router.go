package api

import (
	"github.com/gorilla/mux"

	"github.com/wellnest/wellnest/internal/api/metrics"
	"github.com/wellnest/wellnest/internal/api/recovery"
	"github.com/wellnest/wellnest/internal/services"
	"github.com/wellnest/wellnest/internal/store"
)

// NewRouter wires all HTTP routes to handlers backed by the given store.
func NewRouter(st store.Store) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)
	root.Use(metrics.Middleware)

	// Moods
	mood := NewMoodHandler(services.NewMoodService(st))
	root.HandleFunc("/api/moods", mood.CreateMood).Methods("POST")
	root.HandleFunc("/api/moods", mood.ListMoods).Methods("GET")
	root.HandleFunc("/api/moods/{date}", mood.GetMoodByDate).Methods("GET")

	// Habits
	habit := NewHabitHandler(services.NewHabitService(st))
	root.HandleFunc("/api/habits", habit.ListHabits).Methods("GET")
	root.HandleFunc("/api/habits", habit.CreateHabit).Methods("POST")
	root.HandleFunc("/api/habits/{id}", habit.UpdateHabit).Methods("PATCH")
	root.HandleFunc("/api/habit-entries/{date}", habit.ListEntriesByDate).Methods("GET")
	root.HandleFunc("/api/habit-entries/{habitId}/{date}", habit.ToggleEntry).Methods("PUT")

	// Journal
	journal := NewJournalHandler(services.NewJournalService(st))
	root.HandleFunc("/api/journal-entries", journal.CreateEntry).Methods("POST")
	root.HandleFunc("/api/journal-entries", journal.ListEntries).Methods("GET")

	// Analytics
	analytics := NewAnalyticsHandler(services.NewAnalyticsService(st))
	root.HandleFunc("/api/analytics", analytics.GetAnalytics).Methods("GET")

	// Health & metrics
	root.HandleFunc("/api/health", NewHealthHandler().CheckHealth).Methods("GET")
	root.Handle("/metrics", metrics.Handler()).Methods("GET")

	return root
}
