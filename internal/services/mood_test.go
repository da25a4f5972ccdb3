package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/store/memory"
)

func TestRecordMoodRoundTrip(t *testing.T) {
	svc := NewMoodService(memory.New())
	ctx := context.Background()

	for v := 1; v <= 5; v++ {
		date := addDays(t, "2025-06-01", v)
		m, err := svc.RecordMood(ctx, v, nil, date)
		require.NoError(t, err)
		assert.Equal(t, v, m.Value)

		rng, err := svc.GetMoodsByDateRange(ctx, date, date)
		require.NoError(t, err)
		require.Len(t, rng, 1)
		assert.Equal(t, m.ID, rng[0].ID)
	}
}

func TestRecordMoodRejectsOutOfRange(t *testing.T) {
	svc := NewMoodService(memory.New())
	ctx := context.Background()

	for _, v := range []int{0, 6, -1, 100} {
		_, err := svc.RecordMood(ctx, v, nil, "2025-06-01")
		assert.ErrorIs(t, err, model.ErrValidation, "value %d", v)
	}
}

func TestRecordMoodRejectsBadDate(t *testing.T) {
	svc := NewMoodService(memory.New())

	for _, d := range []string{"", "2025-6-1", "06/01/2025", "2025-13-01", "not-a-date"} {
		_, err := svc.RecordMood(context.Background(), 3, nil, d)
		assert.ErrorIs(t, err, model.ErrValidation, "date %q", d)
	}
}

func TestGetMoodByDateLastWriteWins(t *testing.T) {
	svc := NewMoodService(memory.New())
	ctx := context.Background()

	_, err := svc.RecordMood(ctx, 2, strptr("morning"), "2025-06-01")
	require.NoError(t, err)
	_, err = svc.RecordMood(ctx, 5, strptr("evening"), "2025-06-01")
	require.NoError(t, err)

	got, err := svc.GetMoodByDate(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Value)

	_, err = svc.GetMoodByDate(ctx, "2025-06-02")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGetMoodsByDateRangeRequiresBothBounds(t *testing.T) {
	svc := NewMoodService(memory.New())
	ctx := context.Background()

	_, err := svc.GetMoodsByDateRange(ctx, "", "2025-06-07")
	assert.ErrorIs(t, err, model.ErrValidation)
	_, err = svc.GetMoodsByDateRange(ctx, "2025-06-01", "")
	assert.ErrorIs(t, err, model.ErrValidation)
}
