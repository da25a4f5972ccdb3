// Package memory provides the in-process store adapter. It is the default
// driver and the reference implementation for the storetest suite.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/store"
)

// entryKey is the composite index key for habit entries.
type entryKey struct {
	HabitID int64
	Date    string
}

// memStore holds all four collections behind a single mutex. Ids are
// per-collection, start at 1 and are never reused.
type memStore struct {
	mu sync.Mutex

	moods      map[int64]model.Mood
	habits     map[int64]model.Habit
	habitOrder []int64
	entries    map[entryKey]model.HabitEntry
	journal    map[int64]model.JournalEntry

	nextMoodID    int64
	nextHabitID   int64
	nextEntryID   int64
	nextJournalID int64
}

// New returns an empty store seeded with the default habit fixture.
func New() store.Store {
	s := NewEmpty()
	ms := s.(*memStore)
	for _, h := range model.DefaultHabits() {
		h.ID = ms.nextHabitID
		ms.nextHabitID++
		ms.habits[h.ID] = h
		ms.habitOrder = append(ms.habitOrder, h.ID)
	}
	return s
}

// NewEmpty returns a store with no habits seeded.
func NewEmpty() store.Store {
	return &memStore{
		moods:         make(map[int64]model.Mood),
		habits:        make(map[int64]model.Habit),
		entries:       make(map[entryKey]model.HabitEntry),
		journal:       make(map[int64]model.JournalEntry),
		nextMoodID:    1,
		nextHabitID:   1,
		nextEntryID:   1,
		nextJournalID: 1,
	}
}

func (s *memStore) Moods() store.Moods                   { return (*moods)(s) }
func (s *memStore) Habits() store.Habits                 { return (*habits)(s) }
func (s *memStore) HabitEntries() store.HabitEntries     { return (*habitEntries)(s) }
func (s *memStore) JournalEntries() store.JournalEntries { return (*journalEntries)(s) }

// HealthPing implements health.HealthPinger.
func (s *memStore) HealthPing(ctx context.Context) error { return ctx.Err() }

// --- Moods ---

type moods memStore

func (c *moods) Create(ctx context.Context, m *model.Mood) (*model.Mood, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	row := *m
	row.ID = c.nextMoodID
	c.nextMoodID++
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	c.moods[row.ID] = row
	out := row
	return &out, nil
}

func (c *moods) GetByDate(ctx context.Context, date string) (*model.Mood, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Duplicates per date are permitted; resolve last-write-wins by id.
	var found *model.Mood
	for id, m := range c.moods {
		if m.Date == date && (found == nil || id > found.ID) {
			row := m
			found = &row
		}
	}
	if found == nil {
		return nil, model.ErrNotFound
	}
	return found, nil
}

func (c *moods) ListByDateRange(ctx context.Context, start, end string) ([]*model.Mood, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []*model.Mood
	for _, m := range c.moods {
		if m.Date >= start && m.Date <= end {
			row := m
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// --- Habits ---

type habits memStore

func (c *habits) Create(ctx context.Context, h *model.Habit) (*model.Habit, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	row := *h
	row.ID = c.nextHabitID
	c.nextHabitID++
	c.habits[row.ID] = row
	c.habitOrder = append(c.habitOrder, row.ID)
	out := row
	return &out, nil
}

func (c *habits) GetByID(ctx context.Context, id int64) (*model.Habit, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.habits[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := h
	return &out, nil
}

func (c *habits) ListActive(ctx context.Context) ([]*model.Habit, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []*model.Habit
	for _, id := range c.habitOrder {
		if h := c.habits[id]; h.IsActive {
			row := h
			out = append(out, &row)
		}
	}
	return out, nil
}

func (c *habits) Update(ctx context.Context, id int64, upd model.HabitUpdate) (*model.Habit, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.habits[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	upd.Apply(&h)
	c.habits[id] = h
	out := h
	return &out, nil
}

// --- Habit entries ---

type habitEntries memStore

func (c *habitEntries) Upsert(ctx context.Context, habitID int64, date string, completed bool) (*model.HabitEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := entryKey{HabitID: habitID, Date: date}
	e, ok := c.entries[key]
	if !ok {
		e = model.HabitEntry{ID: c.nextEntryID, HabitID: habitID, Date: date}
		c.nextEntryID++
	}
	e.Completed = completed
	c.entries[key] = e
	out := e
	return &out, nil
}

func (c *habitEntries) Get(ctx context.Context, habitID int64, date string) (*model.HabitEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[entryKey{HabitID: habitID, Date: date}]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := e
	return &out, nil
}

func (c *habitEntries) ListByDate(ctx context.Context, date string) ([]*model.HabitEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []*model.HabitEntry
	for _, e := range c.entries {
		if e.Date == date {
			row := e
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --- Journal entries ---

type journalEntries memStore

func (c *journalEntries) Create(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	row := *e
	row.ID = c.nextJournalID
	c.nextJournalID++
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	c.journal[row.ID] = row
	out := row
	return &out, nil
}

func (c *journalEntries) List(ctx context.Context, limit int) ([]*model.JournalEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.sortedJournalLocked(func(model.JournalEntry) bool { return true })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (c *journalEntries) ListByDateRange(ctx context.Context, start, end string) ([]*model.JournalEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sortedJournalLocked(func(e model.JournalEntry) bool {
		return e.Date >= start && e.Date <= end
	}), nil
}

// sortedJournalLocked returns matching entries newest first. Caller holds mu.
func (c *journalEntries) sortedJournalLocked(match func(model.JournalEntry) bool) []*model.JournalEntry {
	var out []*model.JournalEntry
	for _, e := range c.journal {
		if match(e) {
			row := e
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
