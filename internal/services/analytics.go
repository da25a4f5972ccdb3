package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/wellnest/wellnest/internal/model"
	"github.com/wellnest/wellnest/internal/store"
	"github.com/wellnest/wellnest/internal/validate"
)

// streakScanDays caps how far back the streak walk examines.
const streakScanDays = 30

// AnalyticsService derives the summary view from store state. It owns no
// state and performs only reads, so it is safe to call concurrently.
type AnalyticsService struct {
	store store.Store
}

func NewAnalyticsService(s store.Store) *AnalyticsService { return &AnalyticsService{store: s} }

// Summary computes the weekly check-in stats, today's habit completion, and
// the day streak. The caller supplies today so the computation stays
// deterministic.
func (s *AnalyticsService) Summary(ctx context.Context, today string) (*model.AnalyticsSummary, error) {
	if err := validate.Date("date", today); err != nil {
		return nil, err
	}
	day, _ := time.Parse(validate.DateLayout, today)

	weekAgo := day.AddDate(0, 0, -6).Format(validate.DateLayout)
	weeklyMoods, err := s.store.Moods().ListByDateRange(ctx, weekAgo, today)
	if err != nil {
		return nil, err
	}

	todayEntries, err := s.store.HabitEntries().ListByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	habits, err := s.store.Habits().ListActive(ctx)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, e := range todayEntries {
		if e.Completed {
			completed++
		}
	}

	checkInPercentage := 0
	averageMood := "0"
	if len(weeklyMoods) > 0 {
		checkInPercentage = int(math.Round(float64(len(weeklyMoods)) / 7 * 100))
		sum := 0
		for _, m := range weeklyMoods {
			sum += m.Value
		}
		averageMood = strconv.FormatFloat(float64(sum)/float64(len(weeklyMoods)), 'f', 1, 64)
	}

	streak, err := s.streak(ctx, day)
	if err != nil {
		return nil, err
	}

	points := make([]model.MoodPoint, len(weeklyMoods))
	for i, m := range weeklyMoods {
		points[i] = model.MoodPoint{Date: m.Date, Value: m.Value}
	}

	return &model.AnalyticsSummary{
		CheckInPercentage: checkInPercentage,
		CheckInCount:      fmt.Sprintf("%d of 7 days", len(weeklyMoods)),
		AverageMood:       averageMood,
		Streak:            streak,
		CompletedHabits:   completed,
		TotalHabits:       len(habits),
		WeeklyMoods:       points,
	}, nil
}

// streak walks backward from today for at most streakScanDays days. A day
// with any check-in extends the streak; a day without one stops the walk,
// except day 0 — not having checked in yet today does not break an otherwise
// continuous streak. One range query covers the whole window.
func (s *AnalyticsService) streak(ctx context.Context, day time.Time) (int, error) {
	horizon := day.AddDate(0, 0, -(streakScanDays - 1)).Format(validate.DateLayout)
	history, err := s.store.Moods().ListByDateRange(ctx, horizon, day.Format(validate.DateLayout))
	if err != nil {
		return 0, err
	}

	seen := make(map[string]struct{}, len(history))
	for _, m := range history {
		seen[m.Date] = struct{}{}
	}

	streak := 0
	cur := day
	for i := 0; i < streakScanDays; i++ {
		if _, ok := seen[cur.Format(validate.DateLayout)]; ok {
			streak++
		} else if i > 0 {
			break
		}
		cur = cur.AddDate(0, 0, -1)
	}
	return streak, nil
}
