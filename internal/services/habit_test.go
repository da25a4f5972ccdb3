package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/store/memory"
)

func TestCreateHabitDefaultsActive(t *testing.T) {
	svc := NewHabitService(memory.New())
	ctx := context.Background()

	h, err := svc.CreateHabit(ctx, "Reading", "book", "20 minutes", "primary", nil)
	require.NoError(t, err)
	assert.True(t, h.IsActive)

	h, err = svc.CreateHabit(ctx, "Stretching", "body", "5 minutes", "info", boolptr(false))
	require.NoError(t, err)
	assert.False(t, h.IsActive)

	habits, err := svc.ListHabits(ctx)
	require.NoError(t, err)
	for _, got := range habits {
		assert.NotEqual(t, "Stretching", got.Name)
	}
}

func TestCreateHabitRequiresAllFields(t *testing.T) {
	svc := NewHabitService(memory.New())
	ctx := context.Background()

	cases := [][4]string{
		{"", "book", "20 minutes", "primary"},
		{"Reading", "", "20 minutes", "primary"},
		{"Reading", "book", "", "primary"},
		{"Reading", "book", "20 minutes", ""},
	}
	for _, c := range cases {
		_, err := svc.CreateHabit(ctx, c[0], c[1], c[2], c[3], nil)
		assert.ErrorIs(t, err, model.ErrValidation)
	}
}

func TestUpdateHabitNotFound(t *testing.T) {
	svc := NewHabitService(memory.New())
	_, err := svc.UpdateHabit(context.Background(), 42, model.HabitUpdate{Name: strptr("x")})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestToggleHabitEntryIdempotent(t *testing.T) {
	svc := NewHabitService(memory.New())
	ctx := context.Background()
	const date = "2025-06-10"

	e1, err := svc.ToggleHabitEntry(ctx, 1, date, true)
	require.NoError(t, err)
	e2, err := svc.ToggleHabitEntry(ctx, 1, date, true)
	require.NoError(t, err)
	assert.Equal(t, e1.ID, e2.ID)
	assert.True(t, e2.Completed)

	entries, err := svc.HabitEntriesByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Completed)

	// untoggle overwrites in place
	e3, err := svc.ToggleHabitEntry(ctx, 1, date, false)
	require.NoError(t, err)
	assert.Equal(t, e1.ID, e3.ID)
	assert.False(t, e3.Completed)
}

func TestToggleHabitEntryRejectsBadDate(t *testing.T) {
	svc := NewHabitService(memory.New())
	_, err := svc.ToggleHabitEntry(context.Background(), 1, "10-06-2025", true)
	assert.ErrorIs(t, err, model.ErrValidation)
}
