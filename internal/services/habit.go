package services

import (
	"context"

	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/store"
	"github.com/wellnest/wellnest/internal/validate"
)

// HabitService owns habit commands and queries, including per-day completion
// toggles.
type HabitService struct {
	store store.Store
}

func NewHabitService(s store.Store) *HabitService { return &HabitService{store: s} }

// CreateHabit validates all text fields non-empty. isActive defaults to true
// when nil.
func (s *HabitService) CreateHabit(ctx context.Context, name, icon, target, color string, isActive *bool) (*model.Habit, error) {
	if err := validate.NonEmpty("name", name); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty("icon", icon); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty("target", target); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty("color", color); err != nil {
		return nil, err
	}
	active := true
	if isActive != nil {
		active = *isActive
	}
	return s.store.Habits().Create(ctx, &model.Habit{Name: name, Icon: icon, Target: target, Color: color, IsActive: active})
}

// UpdateHabit merges only the provided fields; model.ErrNotFound when the id
// does not exist.
func (s *HabitService) UpdateHabit(ctx context.Context, id int64, upd model.HabitUpdate) (*model.Habit, error) {
	return s.store.Habits().Update(ctx, id, upd)
}

// ListHabits returns active habits in creation order.
func (s *HabitService) ListHabits(ctx context.Context) ([]*model.Habit, error) {
	return s.store.Habits().ListActive(ctx)
}

// ToggleHabitEntry upserts the completion record for (habitID, date). Safe to
// call repeatedly with the same arguments.
func (s *HabitService) ToggleHabitEntry(ctx context.Context, habitID int64, date string, completed bool) (*model.HabitEntry, error) {
	if err := validate.Date("date", date); err != nil {
		return nil, err
	}
	return s.store.HabitEntries().Upsert(ctx, habitID, date, completed)
}

// HabitEntriesByDate returns all completion records for the date, any habit.
func (s *HabitService) HabitEntriesByDate(ctx context.Context, date string) ([]*model.HabitEntry, error) {
	if err := validate.Date("date", date); err != nil {
		return nil, err
	}
	return s.store.HabitEntries().ListByDate(ctx, date)
}
