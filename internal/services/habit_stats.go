package services

import (
	"sort"

	"github.com/wellspringhq/wellspring/internal/models"
)

const habitPerformanceLimit = 10

type HabitPerformance struct {
	HabitID        uint    `json:"habit_id"`
	HabitName      string  `json:"habit_name"`
	Completions    int     `json:"completions"`
	CompletionRate float64 `json:"completion_rate"`
}

type HabitStats struct {
	TotalHabits           int                `json:"total_habits"`
	TotalCompletions      int                `json:"total_completions"`
	OverallCompletionRate float64            `json:"overall_completion_rate"`
	HabitPerformance      []HabitPerformance `json:"habit_performance"`
	BestHabit             *HabitPerformance  `json:"best_habit"`
	WorstHabit            *HabitPerformance  `json:"worst_habit"`
}

// BuildHabitStats rates each habit against the full window: the
// denominator is windowDays, not the days the habit has existed, so a
// habit created mid-window reports a lower rate. That matches how the
// rate is defined (share of window days completed); changing the
// denominator is a product decision, not a bug fix.
func BuildHabitStats(habits []models.Habit, windowDays int) HabitStats {
	stats := HabitStats{
		HabitPerformance: make([]HabitPerformance, 0, len(habits)),
	}

	performance := make([]HabitPerformance, 0, len(habits))
	for _, habit := range habits {
		completions := 0
		for _, progress := range habit.Progress {
			if progress.Completed {
				completions++
			}
		}
		stats.TotalCompletions += completions

		rate := 0.0
		if windowDays > 0 {
			rate = roundOneDecimal(float64(completions) / float64(windowDays) * 100)
		}
		performance = append(performance, HabitPerformance{
			HabitID:        habit.ID,
			HabitName:      habit.Name,
			Completions:    completions,
			CompletionRate: rate,
		})
	}

	stats.TotalHabits = len(habits)
	possibleCompletions := len(habits) * windowDays
	if possibleCompletions > 0 {
		stats.OverallCompletionRate = roundOneDecimal(float64(stats.TotalCompletions) / float64(possibleCompletions) * 100)
	}

	sort.SliceStable(performance, func(i, j int) bool {
		return performance[i].CompletionRate > performance[j].CompletionRate
	})

	if len(performance) > 0 {
		best := performance[0]
		stats.BestHabit = &best
		// Worst is taken from the full sorted list, not the top-10 slice.
		worst := performance[len(performance)-1]
		stats.WorstHabit = &worst
	}

	if len(performance) > habitPerformanceLimit {
		performance = performance[:habitPerformanceLimit]
	}
	stats.HabitPerformance = performance

	return stats
}
