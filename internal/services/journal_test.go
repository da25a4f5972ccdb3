package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/store/memory"
)

func TestCreateEntryRequiresContent(t *testing.T) {
	svc := NewJournalService(memory.New())
	_, err := svc.CreateEntry(context.Background(), "", nil, "2025-06-01")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestCreateEntryKeepsMoodValueVerbatim(t *testing.T) {
	svc := NewJournalService(memory.New())
	ctx := context.Background()

	// out-of-scale values pass through untouched
	e, err := svc.CreateEntry(ctx, "strange day", intptr(11), "2025-06-01")
	require.NoError(t, err)
	require.NotNil(t, e.MoodValue)
	assert.Equal(t, 11, *e.MoodValue)

	e, err = svc.CreateEntry(ctx, "no mood", nil, "2025-06-02")
	require.NoError(t, err)
	assert.Nil(t, e.MoodValue)
}

func TestEntriesLimitNewestFirst(t *testing.T) {
	svc := NewJournalService(memory.New())
	ctx := context.Background()

	var last *model.JournalEntry
	for i := 0; i < 5; i++ {
		e, err := svc.CreateEntry(ctx, "entry", nil, addDays(t, "2025-06-01", i))
		require.NoError(t, err)
		last = e
	}

	top, err := svc.Entries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, last.ID, top[0].ID)

	all, err := svc.Entries(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestEntriesByDateRangeInclusive(t *testing.T) {
	svc := NewJournalService(memory.New())
	ctx := context.Background()

	for _, d := range []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04"} {
		_, err := svc.CreateEntry(ctx, "entry "+d, nil, d)
		require.NoError(t, err)
	}

	rng, err := svc.EntriesByDateRange(ctx, "2025-06-02", "2025-06-03")
	require.NoError(t, err)
	require.Len(t, rng, 2)
	// newest first within the range
	assert.Equal(t, "2025-06-03", rng[0].Date)
	assert.Equal(t, "2025-06-02", rng[1].Date)
}
