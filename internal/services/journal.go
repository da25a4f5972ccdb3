package services

import (
	"context"

	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/store"
	"github.com/wellnest/wellnest/internal/validate"
)

// JournalService owns free-form journal commands and queries.
type JournalService struct {
	store store.Store
}

func NewJournalService(s store.Store) *JournalService { return &JournalService{store: s} }

// CreateEntry requires non-empty content. moodValue is stored verbatim; the
// 1-5 scale is not enforced here, matching historical behavior.
func (s *JournalService) CreateEntry(ctx context.Context, content string, moodValue *int, date string) (*model.JournalEntry, error) {
	if err := validate.NonEmpty("content", content); err != nil {
		return nil, err
	}
	if err := validate.Date("date", date); err != nil {
		return nil, err
	}
	return s.store.JournalEntries().Create(ctx, &model.JournalEntry{Content: content, MoodValue: moodValue, Date: date})
}

// Entries returns journal entries newest first; limit <= 0 returns all.
func (s *JournalService) Entries(ctx context.Context, limit int) ([]*model.JournalEntry, error) {
	return s.store.JournalEntries().List(ctx, limit)
}

// EntriesByDateRange returns entries with start <= date <= end, newest first.
func (s *JournalService) EntriesByDateRange(ctx context.Context, start, end string) ([]*model.JournalEntry, error) {
	if err := validate.Date("startDate", start); err != nil {
		return nil, err
	}
	if err := validate.Date("endDate", end); err != nil {
		return nil, err
	}
	return s.store.JournalEntries().ListByDateRange(ctx, start, end)
}
