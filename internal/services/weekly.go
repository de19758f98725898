package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

type WeekTotals struct {
	Journals         int `json:"journals"`
	HabitCompletions int `json:"habit_completions"`
	MoodEntries      int `json:"mood_entries"`
}

type MetricComparison struct {
	Change        int `json:"change"`
	PercentChange int `json:"percent_change"`
}

type WeeklyComparison struct {
	ThisWeek   WeekTotals            `json:"this_week"`
	LastWeek   WeekTotals            `json:"last_week"`
	Comparison WeeklyComparisonDelta `json:"comparison"`
}

type WeeklyComparisonDelta struct {
	Journals MetricComparison `json:"journals"`
	Habits   MetricComparison `json:"habits"`
	Moods    MetricComparison `json:"moods"`
}

// BuildWeeklyComparison compares the current calendar week (week start
// through now) against the previous one, a fixed 7-day span ending one
// second before this week started.
func (service *AnalyticsService) BuildWeeklyComparison(ctx context.Context, userID uint) (WeeklyComparison, error) {
	now := time.Now().In(service.location)
	thisWeekStart := WeekStart(now, service.location)
	lastWeekStart := thisWeekStart.AddDate(0, 0, -7)
	lastWeekEnd := thisWeekStart.Add(-time.Second)

	var thisWeek, lastWeek WeekTotals
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		thisWeek, err = service.weekTotals(groupCtx, userID, thisWeekStart, now)
		return err
	})
	group.Go(func() error {
		var err error
		lastWeek, err = service.weekTotals(groupCtx, userID, lastWeekStart, lastWeekEnd)
		return err
	})
	if err := group.Wait(); err != nil {
		return WeeklyComparison{}, err
	}

	return WeeklyComparison{
		ThisWeek: thisWeek,
		LastWeek: lastWeek,
		Comparison: WeeklyComparisonDelta{
			Journals: compareMetric(lastWeek.Journals, thisWeek.Journals),
			Habits:   compareMetric(lastWeek.HabitCompletions, thisWeek.HabitCompletions),
			Moods:    compareMetric(lastWeek.MoodEntries, thisWeek.MoodEntries),
		},
	}, nil
}

func (service *AnalyticsService) weekTotals(ctx context.Context, userID uint, from time.Time, to time.Time) (WeekTotals, error) {
	var totals WeekTotals

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		count, err := service.journals.CountByUserBetween(userID, from, to)
		if err != nil {
			return fmt.Errorf("count journals: %w", err)
		}
		totals.Journals = count
		return nil
	})
	group.Go(func() error {
		habits, err := service.habits.ListByUserWithCompletedProgressBetween(userID, from, to)
		if err != nil {
			return fmt.Errorf("list completed habit progress: %w", err)
		}
		for _, habit := range habits {
			totals.HabitCompletions += len(habit.Progress)
		}
		return nil
	})
	group.Go(func() error {
		count, err := service.moods.CountByUserBetween(userID, from, to)
		if err != nil {
			return fmt.Errorf("count moods: %w", err)
		}
		totals.MoodEntries = count
		return nil
	})
	if err := group.Wait(); err != nil {
		return WeekTotals{}, err
	}
	return totals, nil
}

// compareMetric avoids dividing by a zero baseline: coming from nothing
// to something reads as +100%, nothing to nothing as 0%.
func compareMetric(lastWeek int, thisWeek int) MetricComparison {
	comparison := MetricComparison{Change: thisWeek - lastWeek}
	if lastWeek == 0 {
		if thisWeek > 0 {
			comparison.PercentChange = 100
		}
		return comparison
	}
	comparison.PercentChange = roundToInt(float64(thisWeek-lastWeek) / float64(lastWeek) * 100)
	return comparison
}
