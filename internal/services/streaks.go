package services

import (
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
)

type Streaks struct {
	JournalStreak int `json:"journal_streak"`
	HabitStreak   int `json:"habit_streak"`
	LongestStreak int `json:"longest_streak"`
}

// BuildStreaks walks backward from today, at most windowDays steps. A
// missing day breaks the streak, except today itself: a user who has not
// logged anything yet today keeps yesterday's streak until the day ends.
func BuildStreaks(journals []models.Journal, habits []models.Habit, windowDays int, now time.Time, location *time.Location) Streaks {
	journalDays := make(map[string]bool, len(journals))
	for _, journal := range journals {
		journalDays[DayKey(journal.CreatedAt, location)] = true
	}

	habitDays := make(map[string]bool)
	for _, habit := range habits {
		for _, progress := range habit.Progress {
			if progress.Completed {
				habitDays[progress.Date] = true
			}
		}
	}

	streaks := Streaks{
		JournalStreak: countStreak(journalDays, windowDays, now, location),
		HabitStreak:   countStreak(habitDays, windowDays, now, location),
	}
	streaks.LongestStreak = streaks.JournalStreak
	if streaks.HabitStreak > streaks.LongestStreak {
		streaks.LongestStreak = streaks.HabitStreak
	}
	return streaks
}

func countStreak(activeDays map[string]bool, windowDays int, now time.Time, location *time.Location) int {
	today := DateAtLocation(now, location)
	streak := 0
	for offset := 0; offset < windowDays; offset++ {
		key := today.AddDate(0, 0, -offset).Format(dayKeyLayout)
		if activeDays[key] {
			streak++
		} else if offset > 0 {
			break
		}
	}
	return streak
}
