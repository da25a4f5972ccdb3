package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/store/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(memory.New()))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, method, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestMoodEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/moods", map[string]any{"value": 4, "note": "good", "date": "2025-06-01"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[model.Mood](t, resp)
	assert.EqualValues(t, 1, created.ID)
	assert.Equal(t, 4, created.Value)

	resp, err := http.Get(srv.URL + "/api/moods/2025-06-01")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[model.Mood](t, resp)
	assert.Equal(t, created.ID, got.ID)

	resp, err = http.Get(srv.URL + "/api/moods/2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/moods?startDate=2025-06-01&endDate=2025-06-07")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rng := decode[[]model.Mood](t, resp)
	assert.Len(t, rng, 1)

	// both bounds are required
	resp, err = http.Get(srv.URL + "/api/moods?startDate=2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestMoodValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	for _, v := range []int{0, 6} {
		resp := postJSON(t, srv.URL+"/api/moods", map[string]any{"value": v, "date": "2025-06-01"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "value %d", v)
		_ = resp.Body.Close()
	}

	resp := postJSON(t, srv.URL+"/api/moods", map[string]any{"value": 3, "date": "June 1st"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestHabitEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/habits")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	habits := decode[[]model.Habit](t, resp)
	require.Len(t, habits, 4)
	assert.Equal(t, "Exercise", habits[0].Name)

	resp = postJSON(t, srv.URL+"/api/habits", map[string]any{"name": "Reading", "icon": "book", "target": "20 minutes", "color": "primary"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[model.Habit](t, resp)
	assert.True(t, created.IsActive)

	resp = postJSON(t, srv.URL+"/api/habits", map[string]any{"name": "Incomplete"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, http.MethodPatch, fmt.Sprintf("%s/api/habits/%d", srv.URL, created.ID), map[string]any{"target": "45 minutes"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[model.Habit](t, resp)
	assert.Equal(t, "45 minutes", updated.Target)
	assert.Equal(t, "Reading", updated.Name)

	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/habits/999", map[string]any{"target": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestHabitEntryEndpoints(t *testing.T) {
	srv := newTestServer(t)
	const date = "2025-06-10"

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/habit-entries/1/"+date, map[string]any{"completed": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := decode[model.HabitEntry](t, resp)
	assert.True(t, first.Completed)

	// repeat toggle is idempotent
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/habit-entries/1/"+date, map[string]any{"completed": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decode[model.HabitEntry](t, resp)
	assert.Equal(t, first.ID, second.ID)

	resp, err := http.Get(srv.URL + "/api/habit-entries/" + date)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entries := decode[[]model.HabitEntry](t, resp)
	require.Len(t, entries, 1)
}

func TestJournalEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for i := 1; i <= 5; i++ {
		resp := postJSON(t, srv.URL+"/api/journal-entries", map[string]any{
			"content": fmt.Sprintf("entry %d", i),
			"date":    fmt.Sprintf("2025-06-%02d", i),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		_ = resp.Body.Close()
	}

	resp := postJSON(t, srv.URL+"/api/journal-entries", map[string]any{"content": "", "date": "2025-06-06"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/journal-entries?limit=2")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	top := decode[[]model.JournalEntry](t, resp)
	require.Len(t, top, 2)
	assert.Equal(t, "entry 5", top[0].Content)
	assert.Equal(t, "entry 4", top[1].Content)

	resp, err = http.Get(srv.URL + "/api/journal-entries?startDate=2025-06-02&endDate=2025-06-03")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rng := decode[[]model.JournalEntry](t, resp)
	require.Len(t, rng, 2)
	assert.Equal(t, "entry 3", rng[0].Content)
}

func TestAnalyticsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	for _, d := range []string{"2025-06-13", "2025-06-14", "2025-06-15"} {
		resp := postJSON(t, srv.URL+"/api/moods", map[string]any{"value": 4, "date": d})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		_ = resp.Body.Close()
	}
	resp := doJSON(t, http.MethodPut, srv.URL+"/api/habit-entries/1/2025-06-15", map[string]any{"completed": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err := http.Get(srv.URL + "/api/analytics?date=2025-06-15")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sum := decode[model.AnalyticsSummary](t, resp)

	assert.Equal(t, 43, sum.CheckInPercentage)
	assert.Equal(t, "3 of 7 days", sum.CheckInCount)
	assert.Equal(t, "4.0", sum.AverageMood)
	assert.Equal(t, 3, sum.Streak)
	assert.Equal(t, 1, sum.CompletedHabits)
	assert.Equal(t, 4, sum.TotalHabits)
	require.Len(t, sum.WeeklyMoods, 3)

	resp, err = http.Get(srv.URL + "/api/analytics?date=garbage")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Contains(t, body, "status")

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
}
