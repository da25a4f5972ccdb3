// Package sqlite provides the file-backed store adapter.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/store"
)

type sqStore struct{ db *sql.DB }

// New opens (or creates) the database at path, applies the schema, and seeds
// the default habit fixture when the habits table is empty.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires an existing connection (used by the factory and tests).
func NewWithDB(db *sql.DB) (store.Store, error) {
	for _, stmt := range ddlStatements() {
		if _, err := db.Exec(stmt); err != nil {
			return nil, err
		}
	}
	if err := seedDefaultHabits(db); err != nil {
		return nil, err
	}
	return &sqStore{db: db}, nil
}

func seedDefaultHabits(db *sql.DB) error {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM habits`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, h := range model.DefaultHabits() {
		if _, err := db.Exec(`INSERT INTO habits (name, icon, target, color, is_active) VALUES (?,?,?,?,?)`,
			h.Name, h.Icon, h.Target, h.Color, h.IsActive); err != nil {
			return err
		}
	}
	return nil
}

func (s *sqStore) Moods() store.Moods                   { return &moods{db: s.db} }
func (s *sqStore) Habits() store.Habits                 { return &habits{db: s.db} }
func (s *sqStore) HabitEntries() store.HabitEntries     { return &habitEntries{db: s.db} }
func (s *sqStore) JournalEntries() store.JournalEntries { return &journalEntries{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *sqStore) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

// Close releases the underlying connection pool.
func (s *sqStore) Close() error { return s.db.Close() }

// DB exposes the underlying connection for test setup.
func (s *sqStore) DB() *sql.DB { return s.db }

// --- Moods ---

type moods struct{ db *sql.DB }

func (c *moods) Create(ctx context.Context, m *model.Mood) (*model.Mood, error) {
	created := m.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	res, err := c.db.ExecContext(ctx, `INSERT INTO moods (value, note, date, created_at) VALUES (?,?,?,?)`,
		m.Value, m.Note, m.Date, created)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *m
	out.ID = id
	out.CreatedAt = created
	return &out, nil
}

func (c *moods) GetByDate(ctx context.Context, date string) (*model.Mood, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, value, note, date, created_at FROM moods WHERE date = ? ORDER BY id DESC LIMIT 1`, date)
	return scanMood(row)
}

func (c *moods) ListByDateRange(ctx context.Context, start, end string) ([]*model.Mood, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, value, note, date, created_at FROM moods WHERE date >= ? AND date <= ? ORDER BY date, id`, start, end)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Mood
	for rows.Next() {
		var m model.Mood
		if err := rows.Scan(&m.ID, &m.Value, &m.Note, &m.Date, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func scanMood(row *sql.Row) (*model.Mood, error) {
	var m model.Mood
	if err := row.Scan(&m.ID, &m.Value, &m.Note, &m.Date, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// --- Habits ---

type habits struct{ db *sql.DB }

func (c *habits) Create(ctx context.Context, h *model.Habit) (*model.Habit, error) {
	res, err := c.db.ExecContext(ctx, `INSERT INTO habits (name, icon, target, color, is_active) VALUES (?,?,?,?,?)`,
		h.Name, h.Icon, h.Target, h.Color, h.IsActive)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *h
	out.ID = id
	return &out, nil
}

func (c *habits) GetByID(ctx context.Context, id int64) (*model.Habit, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, name, icon, target, color, is_active FROM habits WHERE id = ?`, id)
	var h model.Habit
	if err := row.Scan(&h.ID, &h.Name, &h.Icon, &h.Target, &h.Color, &h.IsActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (c *habits) ListActive(ctx context.Context) ([]*model.Habit, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, name, icon, target, color, is_active FROM habits WHERE is_active = 1 ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Habit
	for rows.Next() {
		var h model.Habit
		if err := rows.Scan(&h.ID, &h.Name, &h.Icon, &h.Target, &h.Color, &h.IsActive); err != nil {
			return nil, err
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}

func (c *habits) Update(ctx context.Context, id int64, upd model.HabitUpdate) (*model.Habit, error) {
	h, err := c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(h)
	_, err = c.db.ExecContext(ctx,
		`UPDATE habits SET name = ?, icon = ?, target = ?, color = ?, is_active = ? WHERE id = ?`,
		h.Name, h.Icon, h.Target, h.Color, h.IsActive, id)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// --- Habit entries ---

type habitEntries struct{ db *sql.DB }

func (c *habitEntries) Upsert(ctx context.Context, habitID int64, date string, completed bool) (*model.HabitEntry, error) {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO habit_entries (habit_id, date, completed) VALUES (?,?,?)
         ON CONFLICT (habit_id, date) DO UPDATE SET completed = excluded.completed`,
		habitID, date, completed)
	if err != nil {
		return nil, err
	}
	return c.Get(ctx, habitID, date)
}

func (c *habitEntries) Get(ctx context.Context, habitID int64, date string) (*model.HabitEntry, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, habit_id, date, completed FROM habit_entries WHERE habit_id = ? AND date = ?`, habitID, date)
	var e model.HabitEntry
	if err := row.Scan(&e.ID, &e.HabitID, &e.Date, &e.Completed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (c *habitEntries) ListByDate(ctx context.Context, date string) ([]*model.HabitEntry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, habit_id, date, completed FROM habit_entries WHERE date = ? ORDER BY id`, date)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.HabitEntry
	for rows.Next() {
		var e model.HabitEntry
		if err := rows.Scan(&e.ID, &e.HabitID, &e.Date, &e.Completed); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// --- Journal entries ---

type journalEntries struct{ db *sql.DB }

func (c *journalEntries) Create(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error) {
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	res, err := c.db.ExecContext(ctx,
		`INSERT INTO journal_entries (content, mood_value, date, created_at) VALUES (?,?,?,?)`,
		e.Content, e.MoodValue, e.Date, created)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *e
	out.ID = id
	out.CreatedAt = created
	return &out, nil
}

func (c *journalEntries) List(ctx context.Context, limit int) ([]*model.JournalEntry, error) {
	q := `SELECT id, content, mood_value, date, created_at FROM journal_entries ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	return c.query(ctx, q, args...)
}

func (c *journalEntries) ListByDateRange(ctx context.Context, start, end string) ([]*model.JournalEntry, error) {
	return c.query(ctx,
		`SELECT id, content, mood_value, date, created_at FROM journal_entries
         WHERE date >= ? AND date <= ? ORDER BY created_at DESC, id DESC`, start, end)
}

func (c *journalEntries) query(ctx context.Context, q string, args ...any) ([]*model.JournalEntry, error) {
	rows, err := c.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.JournalEntry
	for rows.Next() {
		var e model.JournalEntry
		if err := rows.Scan(&e.ID, &e.Content, &e.MoodValue, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
