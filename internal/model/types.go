package model

import "time"

// Mood is a single daily check-in on a 1-5 scale.
// Moods are append-only; the store never updates or deletes them.
type Mood struct {
	ID        int64     `json:"id"`
	Value     int       `json:"value"`
	Note      *string   `json:"note,omitempty"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// Habit is a recurring activity the user tracks per day.
// Habits are soft-disabled via IsActive and never hard-deleted.
type Habit struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Target   string `json:"target"`
	Color    string `json:"color"`
	IsActive bool   `json:"isActive"`
}

// HabitEntry records completion of one habit on one date.
// At most one entry exists per (HabitID, Date) pair.
type HabitEntry struct {
	ID        int64  `json:"id"`
	HabitID   int64  `json:"habitId"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// JournalEntry is a free-form note, optionally carrying the mood it was
// written under. MoodValue is stored verbatim and not range-checked.
type JournalEntry struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	MoodValue *int      `json:"moodValue,omitempty"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// HabitUpdate carries a partial habit update; nil fields are left untouched.
type HabitUpdate struct {
	Name     *string `json:"name,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	Target   *string `json:"target,omitempty"`
	Color    *string `json:"color,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// Apply merges the provided fields into h, enumerating each optional field
// explicitly.
func (u HabitUpdate) Apply(h *Habit) {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Icon != nil {
		h.Icon = *u.Icon
	}
	if u.Target != nil {
		h.Target = *u.Target
	}
	if u.Color != nil {
		h.Color = *u.Color
	}
	if u.IsActive != nil {
		h.IsActive = *u.IsActive
	}
}

// MoodPoint is one point of the weekly mood series.
type MoodPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// AnalyticsSummary is the derived view over the last week of check-ins and
// today's habit completion.
type AnalyticsSummary struct {
	CheckInPercentage int         `json:"checkInPercentage"`
	CheckInCount      string      `json:"checkInCount"`
	AverageMood       string      `json:"averageMood"`
	Streak            int         `json:"streak"`
	CompletedHabits   int         `json:"completedHabits"`
	TotalHabits       int         `json:"totalHabits"`
	WeeklyMoods       []MoodPoint `json:"weeklyMoods"`
}

// DefaultHabits returns the fixture seeded into a fresh store.
func DefaultHabits() []Habit {
	return []Habit{
		{Name: "Exercise", Icon: "dumbbell", Target: "30 minutes", Color: "success", IsActive: true},
		{Name: "Meditation", Icon: "brain", Target: "10 minutes", Color: "info", IsActive: true},
		{Name: "Sunlight", Icon: "sun", Target: "15 minutes", Color: "warning", IsActive: true},
		{Name: "Sleep", Icon: "bed", Target: "8 hours", Color: "secondary", IsActive: true},
	}
}
