// Package postgres provides the PostgreSQL store adapter via the pgx stdlib
// driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS moods (
    id BIGSERIAL PRIMARY KEY,
    value INTEGER NOT NULL,
    note TEXT,
    date TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_moods_date ON moods(date);
CREATE TABLE IF NOT EXISTS habits (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    icon TEXT NOT NULL,
    target TEXT NOT NULL,
    color TEXT NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE TABLE IF NOT EXISTS habit_entries (
    id BIGSERIAL PRIMARY KEY,
    habit_id BIGINT NOT NULL,
    date TEXT NOT NULL,
    completed BOOLEAN NOT NULL DEFAULT FALSE,
    UNIQUE (habit_id, date)
);
CREATE TABLE IF NOT EXISTS journal_entries (
    id BIGSERIAL PRIMARY KEY,
    content TEXT NOT NULL,
    mood_value INTEGER,
    date TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_journal_entries_date ON journal_entries(date);
`

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies
// connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// New opens the database, ensures the schema, and seeds the default habit
// fixture when the habits table is empty.
func New(ctx context.Context, dsn string) (store.Store, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	return NewWithDB(ctx, db)
}

// NewWithDB wires an existing connection (used by the factory and tests).
func NewWithDB(ctx context.Context, db *sql.DB) (store.Store, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, err
	}
	if err := seedDefaultHabits(ctx, db); err != nil {
		return nil, err
	}
	return &pgStore{db: db}, nil
}

func seedDefaultHabits(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM habits`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, h := range model.DefaultHabits() {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO habits (name, icon, target, color, is_active) VALUES ($1,$2,$3,$4,$5)`,
			h.Name, h.Icon, h.Target, h.Color, h.IsActive); err != nil {
			return err
		}
	}
	return nil
}

type pgStore struct{ db *sql.DB }

func (s *pgStore) Moods() store.Moods                   { return &moods{db: s.db} }
func (s *pgStore) Habits() store.Habits                 { return &habits{db: s.db} }
func (s *pgStore) HabitEntries() store.HabitEntries     { return &habitEntries{db: s.db} }
func (s *pgStore) JournalEntries() store.JournalEntries { return &journalEntries{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *pgStore) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

// Close releases the underlying connection pool.
func (s *pgStore) Close() error { return s.db.Close() }

// --- Moods ---

type moods struct{ db *sql.DB }

func (c *moods) Create(ctx context.Context, m *model.Mood) (*model.Mood, error) {
	created := m.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	out := *m
	out.CreatedAt = created
	row := c.db.QueryRowContext(ctx,
		`INSERT INTO moods (value, note, date, created_at) VALUES ($1,$2,$3,$4) RETURNING id`,
		m.Value, m.Note, m.Date, created)
	if err := row.Scan(&out.ID); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *moods) GetByDate(ctx context.Context, date string) (*model.Mood, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, value, note, date, created_at FROM moods WHERE date = $1 ORDER BY id DESC LIMIT 1`, date)
	var m model.Mood
	if err := row.Scan(&m.ID, &m.Value, &m.Note, &m.Date, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (c *moods) ListByDateRange(ctx context.Context, start, end string) ([]*model.Mood, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, value, note, date, created_at FROM moods WHERE date >= $1 AND date <= $2 ORDER BY date, id`,
		start, end)
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

// --- Habits ---

type habits struct{ db *sql.DB }

func (c *habits) Create(ctx context.Context, h *model.Habit) (*model.Habit, error) {
	out := *h
	row := c.db.QueryRowContext(ctx,
		`INSERT INTO habits (name, icon, target, color, is_active) VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		h.Name, h.Icon, h.Target, h.Color, h.IsActive)
	if err := row.Scan(&out.ID); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *habits) GetByID(ctx context.Context, id int64) (*model.Habit, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, name, icon, target, color, is_active FROM habits WHERE id = $1`, id)
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
		`SELECT id, name, icon, target, color, is_active FROM habits WHERE is_active ORDER BY id`)
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
		`UPDATE habits SET name = $1, icon = $2, target = $3, color = $4, is_active = $5 WHERE id = $6`,
		h.Name, h.Icon, h.Target, h.Color, h.IsActive, id)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// --- Habit entries ---

type habitEntries struct{ db *sql.DB }

func (c *habitEntries) Upsert(ctx context.Context, habitID int64, date string, completed bool) (*model.HabitEntry, error) {
	row := c.db.QueryRowContext(ctx,
		`INSERT INTO habit_entries (habit_id, date, completed) VALUES ($1,$2,$3)
         ON CONFLICT (habit_id, date) DO UPDATE SET completed = EXCLUDED.completed
         RETURNING id, habit_id, date, completed`,
		habitID, date, completed)
	var e model.HabitEntry
	if err := row.Scan(&e.ID, &e.HabitID, &e.Date, &e.Completed); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *habitEntries) Get(ctx context.Context, habitID int64, date string) (*model.HabitEntry, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, habit_id, date, completed FROM habit_entries WHERE habit_id = $1 AND date = $2`,
		habitID, date)
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
		`SELECT id, habit_id, date, completed FROM habit_entries WHERE date = $1 ORDER BY id`, date)
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
	out := *e
	out.CreatedAt = created
	row := c.db.QueryRowContext(ctx,
		`INSERT INTO journal_entries (content, mood_value, date, created_at) VALUES ($1,$2,$3,$4) RETURNING id`,
		e.Content, e.MoodValue, e.Date, created)
	if err := row.Scan(&out.ID); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *journalEntries) List(ctx context.Context, limit int) ([]*model.JournalEntry, error) {
	q := `SELECT id, content, mood_value, date, created_at FROM journal_entries ORDER BY created_at DESC, id DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT $1`
		args = append(args, limit)
	}
	return c.query(ctx, q, args...)
}

func (c *journalEntries) ListByDateRange(ctx context.Context, start, end string) ([]*model.JournalEntry, error) {
	return c.query(ctx,
		`SELECT id, content, mood_value, date, created_at FROM journal_entries
         WHERE date >= $1 AND date <= $2 ORDER BY created_at DESC, id DESC`, start, end)
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
