package store

import (
	"context"

	"github.com/wellnest/wellnest/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (memory, sqlite, postgres).
type Store interface {
	Moods() Moods
	Habits() Habits
	HabitEntries() HabitEntries
	JournalEntries() JournalEntries
}

// Moods is the append-only check-in collection. Dates are YYYY-MM-DD strings;
// lexicographic order equals chronological order.
type Moods interface {
	// Create assigns the next id, stamps CreatedAt when unset, and appends.
	// Duplicate dates are permitted.
	Create(ctx context.Context, m *model.Mood) (*model.Mood, error)
	// GetByDate returns the most recently created mood for the date, or
	// model.ErrNotFound when none exists.
	GetByDate(ctx context.Context, date string) (*model.Mood, error)
	// ListByDateRange returns moods with start <= date <= end, ascending by date.
	ListByDateRange(ctx context.Context, start, end string) ([]*model.Mood, error)
}

type Habits interface {
	Create(ctx context.Context, h *model.Habit) (*model.Habit, error)
	GetByID(ctx context.Context, id int64) (*model.Habit, error)
	// ListActive returns habits with IsActive=true in insertion order.
	ListActive(ctx context.Context) ([]*model.Habit, error)
	// Update merges the provided fields into the habit; model.ErrNotFound when
	// the id does not exist.
	Update(ctx context.Context, id int64, upd model.HabitUpdate) (*model.Habit, error)
}

type HabitEntries interface {
	// Upsert creates the entry for (habitID, date) or overwrites its completed
	// flag in place. Atomic and idempotent: repeated calls with the same
	// arguments never produce duplicate entries.
	Upsert(ctx context.Context, habitID int64, date string, completed bool) (*model.HabitEntry, error)
	// Get is a point lookup via the composite (habitID, date) key;
	// model.ErrNotFound when the pair was never toggled.
	Get(ctx context.Context, habitID int64, date string) (*model.HabitEntry, error)
	ListByDate(ctx context.Context, date string) ([]*model.HabitEntry, error)
}

type JournalEntries interface {
	Create(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error)
	// List returns entries newest first (CreatedAt descending, id as
	// tiebreaker). limit <= 0 returns all entries.
	List(ctx context.Context, limit int) ([]*model.JournalEntry, error)
	// ListByDateRange returns entries with start <= date <= end, newest first.
	ListByDateRange(ctx context.Context, start, end string) ([]*model.JournalEntry, error)
}
