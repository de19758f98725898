package services

import (
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
)

type HeatmapDay struct {
	Date     string `json:"date"`
	Journals int    `json:"journals"`
	Habits   int    `json:"habits"`
	Moods    int    `json:"moods"`
	Total    int    `json:"total"`
}

// BuildActivityHeatmap returns one entry per calendar day in
// [today-windowDays+1, today], oldest first. Every day in the window is
// present even with zero activity. A habit counts toward a day only
// through a completed progress record dated that day.
func BuildActivityHeatmap(journals []models.Journal, habits []models.Habit, moods []models.MoodEntry, windowDays int, now time.Time, location *time.Location) []HeatmapDay {
	if windowDays < 1 {
		return []HeatmapDay{}
	}

	today := DateAtLocation(now, location)
	days := make([]HeatmapDay, 0, windowDays)
	byKey := make(map[string]int, windowDays)
	for offset := windowDays - 1; offset >= 0; offset-- {
		key := today.AddDate(0, 0, -offset).Format(dayKeyLayout)
		byKey[key] = len(days)
		days = append(days, HeatmapDay{Date: key})
	}

	for _, journal := range journals {
		if index, ok := byKey[DayKey(journal.CreatedAt, location)]; ok {
			days[index].Journals++
			days[index].Total++
		}
	}

	for _, habit := range habits {
		for _, progress := range habit.Progress {
			if !progress.Completed {
				continue
			}
			if index, ok := byKey[progress.Date]; ok {
				days[index].Habits++
				days[index].Total++
			}
		}
	}

	for _, mood := range moods {
		if index, ok := byKey[DayKey(mood.Date, location)]; ok {
			days[index].Moods++
			days[index].Total++
		}
	}

	return days
}
