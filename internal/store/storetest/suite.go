// Package storetest exercises a compliance suite against a store.Store
// implementation. Every adapter (memory, sqlite, postgres) must pass it.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/store"
)

func strptr(s string) *string { return &s }

// Run verifies store semantics. makeStore must return a fresh store seeded
// with the default habit fixture.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("SeededHabits", func(t *testing.T) { testSeededHabits(t, makeStore(t)) })
	t.Run("Moods", func(t *testing.T) { testMoods(t, makeStore(t)) })
	t.Run("Habits", func(t *testing.T) { testHabits(t, makeStore(t)) })
	t.Run("HabitEntries", func(t *testing.T) { testHabitEntries(t, makeStore(t)) })
	t.Run("JournalEntries", func(t *testing.T) { testJournalEntries(t, makeStore(t)) })
}

func testSeededHabits(t *testing.T, s store.Store) {
	ctx := context.Background()

	habits, err := s.Habits().ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 4)

	names := make([]string, len(habits))
	for i, h := range habits {
		names[i] = h.Name
		assert.True(t, h.IsActive)
		assert.NotZero(t, h.ID)
	}
	assert.Equal(t, []string{"Exercise", "Meditation", "Sunlight", "Sleep"}, names)
}

func testMoods(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.Moods().GetByDate(ctx, "2025-06-01")
	assert.ErrorIs(t, err, model.ErrNotFound)

	m1, err := s.Moods().Create(ctx, &model.Mood{Value: 4, Date: "2025-06-01"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, m1.ID)
	assert.False(t, m1.CreatedAt.IsZero())

	m2, err := s.Moods().Create(ctx, &model.Mood{Value: 2, Note: strptr("rough day"), Date: "2025-06-02"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, m2.ID)

	_, err = s.Moods().Create(ctx, &model.Mood{Value: 5, Date: "2025-06-03"})
	require.NoError(t, err)

	// duplicate date: reads resolve to the latest write
	dup, err := s.Moods().Create(ctx, &model.Mood{Value: 1, Date: "2025-06-02"})
	require.NoError(t, err)
	got, err := s.Moods().GetByDate(ctx, "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, dup.ID, got.ID)
	assert.Equal(t, 1, got.Value)

	// range is inclusive of both boundary dates and ascending
	rng, err := s.Moods().ListByDateRange(ctx, "2025-06-01", "2025-06-02")
	require.NoError(t, err)
	require.Len(t, rng, 3)
	assert.Equal(t, "2025-06-01", rng[0].Date)
	assert.Equal(t, "2025-06-02", rng[1].Date)
	assert.Equal(t, "2025-06-02", rng[2].Date)

	// note round-trips
	require.NotNil(t, rng[1].Note)
	assert.Equal(t, "rough day", *rng[1].Note)

	empty, err := s.Moods().ListByDateRange(ctx, "2030-01-01", "2030-01-07")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func testHabits(t *testing.T, s store.Store) {
	ctx := context.Background()

	h, err := s.Habits().Create(ctx, &model.Habit{Name: "Reading", Icon: "book", Target: "20 minutes", Color: "primary", IsActive: true})
	require.NoError(t, err)
	assert.EqualValues(t, 5, h.ID)

	// inactive habits never show up in listings
	_, err = s.Habits().Create(ctx, &model.Habit{Name: "Stretching", Icon: "body", Target: "5 minutes", Color: "info", IsActive: false})
	require.NoError(t, err)

	habits, err := s.Habits().ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, habits, 5)
	assert.Equal(t, "Reading", habits[4].Name)

	// partial update touches only provided fields
	updated, err := s.Habits().Update(ctx, h.ID, model.HabitUpdate{Target: strptr("30 minutes")})
	require.NoError(t, err)
	assert.Equal(t, "Reading", updated.Name)
	assert.Equal(t, "30 minutes", updated.Target)
	assert.True(t, updated.IsActive)

	// soft-disable removes it from listings but keeps the record
	off := false
	_, err = s.Habits().Update(ctx, h.ID, model.HabitUpdate{IsActive: &off})
	require.NoError(t, err)
	habits, err = s.Habits().ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, habits, 4)
	kept, err := s.Habits().GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.False(t, kept.IsActive)

	_, err = s.Habits().Update(ctx, 999, model.HabitUpdate{Name: strptr("ghost")})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func testHabitEntries(t *testing.T, s store.Store) {
	ctx := context.Background()
	const date = "2025-06-10"

	_, err := s.HabitEntries().Get(ctx, 1, date)
	assert.ErrorIs(t, err, model.ErrNotFound)

	e1, err := s.HabitEntries().Upsert(ctx, 1, date, true)
	require.NoError(t, err)
	assert.True(t, e1.Completed)

	// idempotent: same arguments, same single entry
	e2, err := s.HabitEntries().Upsert(ctx, 1, date, true)
	require.NoError(t, err)
	assert.Equal(t, e1.ID, e2.ID)

	// overwrite in place, no duplicate row
	e3, err := s.HabitEntries().Upsert(ctx, 1, date, false)
	require.NoError(t, err)
	assert.Equal(t, e1.ID, e3.ID)
	assert.False(t, e3.Completed)

	_, err = s.HabitEntries().Upsert(ctx, 2, date, true)
	require.NoError(t, err)
	_, err = s.HabitEntries().Upsert(ctx, 1, "2025-06-11", true)
	require.NoError(t, err)

	byDate, err := s.HabitEntries().ListByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, byDate, 2)

	got, err := s.HabitEntries().Get(ctx, 1, date)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func testJournalEntries(t *testing.T, s store.Store) {
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := s.JournalEntries().Create(ctx, &model.JournalEntry{
			Content:   "entry",
			Date:      time.Date(2025, 6, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	// limit truncates after sorting newest-first
	top, err := s.JournalEntries().List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "2025-06-05", top[0].Date)
	assert.Equal(t, "2025-06-04", top[1].Date)

	all, err := s.JournalEntries().List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	rng, err := s.JournalEntries().ListByDateRange(ctx, "2025-06-02", "2025-06-04")
	require.NoError(t, err)
	require.Len(t, rng, 3)
	assert.Equal(t, "2025-06-04", rng[0].Date)
	assert.Equal(t, "2025-06-02", rng[2].Date)

	mv := 9
	e, err := s.JournalEntries().Create(ctx, &model.JournalEntry{Content: "odd mood", MoodValue: &mv, Date: "2025-06-06"})
	require.NoError(t, err)
	require.NotNil(t, e.MoodValue)
	assert.Equal(t, 9, *e.MoodValue)
}
