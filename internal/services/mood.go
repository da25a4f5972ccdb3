package services

import (
	"context"

	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/store"
	"github.com/wellnest/wellnest/internal/validate"
)

// MoodService owns daily check-in commands and queries.
type MoodService struct {
	store store.Store
}

func NewMoodService(s store.Store) *MoodService { return &MoodService{store: s} }

// RecordMood appends a new check-in for the date. Duplicate dates are
// permitted; reads resolve to the latest write.
func (s *MoodService) RecordMood(ctx context.Context, value int, note *string, date string) (*model.Mood, error) {
	if err := validate.MoodValue(value); err != nil {
		return nil, err
	}
	if err := validate.Date("date", date); err != nil {
		return nil, err
	}
	return s.store.Moods().Create(ctx, &model.Mood{Value: value, Note: note, Date: date})
}

// GetMoodByDate returns model.ErrNotFound when no check-in exists for the date.
func (s *MoodService) GetMoodByDate(ctx context.Context, date string) (*model.Mood, error) {
	if err := validate.Date("date", date); err != nil {
		return nil, err
	}
	return s.store.Moods().GetByDate(ctx, date)
}

// GetMoodsByDateRange returns check-ins with start <= date <= end, ascending.
// Both bounds are required.
func (s *MoodService) GetMoodsByDateRange(ctx context.Context, start, end string) ([]*model.Mood, error) {
	if err := validate.Date("startDate", start); err != nil {
		return nil, err
	}
	if err := validate.Date("endDate", end); err != nil {
		return nil, err
	}
	return s.store.Moods().ListByDateRange(ctx, start, end)
}
