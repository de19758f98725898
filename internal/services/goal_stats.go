package services

import "github.com/wellspringhq/wellspring/internal/models"

type GoalStats struct {
	TotalGoals              int            `json:"total_goals"`
	ByStatus                map[string]int `json:"by_status"`
	ByCategory              map[string]int `json:"by_category"`
	AverageProgress         int            `json:"average_progress"`
	TotalMilestones         int            `json:"total_milestones"`
	CompletedMilestones     int            `json:"completed_milestones"`
	MilestoneCompletionRate float64        `json:"milestone_completion_rate"`
	MostPopularCategory     string         `json:"most_popular_category"`
}

// BuildGoalStats evaluates goals over their full lifetime; goals are the
// one record type the analytics window does not scope. AverageProgress
// covers active goals only, so finished and shelved goals stop skewing it.
func BuildGoalStats(goals []models.Goal) GoalStats {
	stats := GoalStats{
		ByStatus:   make(map[string]int, len(models.GoalStatuses)),
		ByCategory: make(map[string]int, len(models.GoalCategories)),
	}
	for _, status := range models.GoalStatuses {
		stats.ByStatus[status] = 0
	}
	for _, category := range models.GoalCategories {
		stats.ByCategory[category] = 0
	}

	activeProgress := 0
	activeCount := 0
	for _, goal := range goals {
		stats.ByStatus[goal.Status]++
		stats.ByCategory[goal.Category]++
		if goal.Status == models.GoalStatusActive {
			activeProgress += goal.Progress
			activeCount++
		}
		stats.TotalMilestones += len(goal.Milestones)
		for _, milestone := range goal.Milestones {
			if milestone.Completed {
				stats.CompletedMilestones++
			}
		}
	}

	stats.TotalGoals = len(goals)
	if activeCount > 0 {
		stats.AverageProgress = roundToInt(float64(activeProgress) / float64(activeCount))
	}
	if stats.TotalMilestones > 0 {
		stats.MilestoneCompletionRate = roundOneDecimal(float64(stats.CompletedMilestones) / float64(stats.TotalMilestones) * 100)
	}

	mostPopular := models.GoalCategories[0]
	for _, category := range models.GoalCategories[1:] {
		if stats.ByCategory[category] > stats.ByCategory[mostPopular] {
			mostPopular = category
		}
	}
	stats.MostPopularCategory = mostPopular

	return stats
}
