package services

import (
	"testing"
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
)

func TestBuildStreaksHabitRun(t *testing.T) {
	now := mustParseDay("2025-03-10")
	// Completions today, yesterday, the day before; gap at today-3.
	habits := []models.Habit{
		{ID: 1, Progress: []models.HabitProgress{
			{HabitID: 1, Date: "2025-03-10", Completed: true},
			{HabitID: 1, Date: "2025-03-09", Completed: true},
			{HabitID: 1, Date: "2025-03-08", Completed: true},
			{HabitID: 1, Date: "2025-03-06", Completed: true},
		}},
	}

	streaks := BuildStreaks(nil, habits, 30, now, time.UTC)

	if streaks.HabitStreak != 3 {
		t.Fatalf("expected habit streak 3, got %d", streaks.HabitStreak)
	}
	if streaks.JournalStreak != 0 {
		t.Fatalf("expected journal streak 0, got %d", streaks.JournalStreak)
	}
	if streaks.LongestStreak != 3 {
		t.Fatalf("expected longest streak 3, got %d", streaks.LongestStreak)
	}
}

func TestBuildStreaksTodayInactiveDoesNotBreak(t *testing.T) {
	now := mustParseDay("2025-03-10")
	// Nothing today, but yesterday and the day before count: the streak
	// survives until the day is over.
	habits := []models.Habit{
		{ID: 1, Progress: []models.HabitProgress{
			{HabitID: 1, Date: "2025-03-09", Completed: true},
			{HabitID: 1, Date: "2025-03-08", Completed: true},
		}},
	}

	streaks := BuildStreaks(nil, habits, 30, now, time.UTC)
	if streaks.HabitStreak != 2 {
		t.Fatalf("expected habit streak 2 with inactive today, got %d", streaks.HabitStreak)
	}
}

func TestBuildStreaksJournalDays(t *testing.T) {
	now := mustParseDay("2025-03-10")
	journals := []models.Journal{
		makeJournal("2025-03-10", "a"),
		makeJournal("2025-03-09", "b"),
	}

	streaks := BuildStreaks(journals, nil, 30, now, time.UTC)
	if streaks.JournalStreak != 2 {
		t.Fatalf("expected journal streak 2, got %d", streaks.JournalStreak)
	}
	if streaks.LongestStreak != 2 {
		t.Fatalf("expected longest streak 2, got %d", streaks.LongestStreak)
	}
}

func TestBuildStreaksNoActivity(t *testing.T) {
	streaks := BuildStreaks(nil, nil, 30, mustParseDay("2025-03-10"), time.UTC)
	if streaks.JournalStreak != 0 || streaks.HabitStreak != 0 || streaks.LongestStreak != 0 {
		t.Fatalf("expected zero streaks, got %+v", streaks)
	}
}

func TestBuildStreaksIncompleteProgressDoesNotCount(t *testing.T) {
	now := mustParseDay("2025-03-10")
	habits := []models.Habit{
		{ID: 1, Progress: []models.HabitProgress{
			{HabitID: 1, Date: "2025-03-10", Completed: false},
			{HabitID: 1, Date: "2025-03-09", Completed: true},
		}},
	}

	streaks := BuildStreaks(nil, habits, 30, now, time.UTC)
	// Today's unchecked mark does not count, but today is exempt from
	// breaking, so yesterday's completion still yields 1.
	if streaks.HabitStreak != 1 {
		t.Fatalf("expected habit streak 1, got %d", streaks.HabitStreak)
	}
}

func TestBuildStreaksWindowCap(t *testing.T) {
	now := mustParseDay("2025-03-10")
	habits := []models.Habit{{ID: 1}}
	for offset := 0; offset < 10; offset++ {
		habits[0].Progress = append(habits[0].Progress, models.HabitProgress{
			HabitID:   1,
			Date:      now.AddDate(0, 0, -offset).Format("2006-01-02"),
			Completed: true,
		})
	}

	streaks := BuildStreaks(nil, habits, 5, now, time.UTC)
	if streaks.HabitStreak != 5 {
		t.Fatalf("expected streak capped at window 5, got %d", streaks.HabitStreak)
	}
}
