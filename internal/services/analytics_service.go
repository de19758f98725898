package services

import (
	"context"
	"fmt"
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultAnalyticsWindowDays = 30
	MaxAnalyticsWindowDays     = 365
)

type AnalyticsJournalReader interface {
	ListByUserSince(userID uint, since time.Time) ([]models.Journal, error)
	CountByUserBetween(userID uint, from time.Time, to time.Time) (int, error)
}

type AnalyticsHabitReader interface {
	ListByUserWithProgressSince(userID uint, since time.Time) ([]models.Habit, error)
	ListByUserWithCompletedProgressBetween(userID uint, from time.Time, to time.Time) ([]models.Habit, error)
}

type AnalyticsMoodReader interface {
	ListByUserSince(userID uint, since time.Time) ([]models.MoodEntry, error)
	CountByUserBetween(userID uint, from time.Time, to time.Time) (int, error)
}

type AnalyticsGoalReader interface {
	ListByUserWithMilestones(userID uint) ([]models.Goal, error)
}

type AnalyticsService struct {
	journals AnalyticsJournalReader
	habits   AnalyticsHabitReader
	moods    AnalyticsMoodReader
	goals    AnalyticsGoalReader
	location *time.Location
}

func NewAnalyticsService(journals AnalyticsJournalReader, habits AnalyticsHabitReader, moods AnalyticsMoodReader, goals AnalyticsGoalReader, location *time.Location) *AnalyticsService {
	if location == nil {
		location = time.UTC
	}
	return &AnalyticsService{
		journals: journals,
		habits:   habits,
		moods:    moods,
		goals:    goals,
		location: location,
	}
}

type Overview struct {
	TotalJournals       int `json:"total_journals"`
	TotalHabits         int `json:"total_habits"`
	TotalMoodEntries    int `json:"total_mood_entries"`
	TotalGoals          int `json:"total_goals"`
	ActiveGoals         int `json:"active_goals"`
	CompletedGoals      int `json:"completed_goals"`
	AverageGoalProgress int `json:"average_goal_progress"`
}

type AnalyticsReport struct {
	Period          int          `json:"period"`
	Overview        Overview     `json:"overview"`
	JournalStats    JournalStats `json:"journal_stats"`
	HabitStats      HabitStats   `json:"habit_stats"`
	MoodStats       MoodStats    `json:"mood_stats"`
	GoalStats       GoalStats    `json:"goal_stats"`
	ActivityHeatmap []HeatmapDay `json:"activity_heatmap"`
	Streaks         Streaks      `json:"streaks"`
}

// BuildReport fetches the four record sets concurrently and fails fast if
// any fetch errors; there is no partial-result mode. The aggregators
// themselves are pure and run after every fetch has resolved.
func (service *AnalyticsService) BuildReport(ctx context.Context, userID uint, windowDays int) (AnalyticsReport, error) {
	if windowDays < 1 {
		windowDays = DefaultAnalyticsWindowDays
	}
	if windowDays > MaxAnalyticsWindowDays {
		windowDays = MaxAnalyticsWindowDays
	}

	now := time.Now().In(service.location)
	since := now.AddDate(0, 0, -windowDays)

	var (
		journals []models.Journal
		habits   []models.Habit
		moods    []models.MoodEntry
		goals    []models.Goal
	)

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		journals, err = service.journals.ListByUserSince(userID, since)
		if err != nil {
			return fmt.Errorf("list journals: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		habits, err = service.habits.ListByUserWithProgressSince(userID, since)
		if err != nil {
			return fmt.Errorf("list habits with progress: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		moods, err = service.moods.ListByUserSince(userID, since)
		if err != nil {
			return fmt.Errorf("list moods: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		goals, err = service.goals.ListByUserWithMilestones(userID)
		if err != nil {
			return fmt.Errorf("list goals with milestones: %w", err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return AnalyticsReport{}, err
	}

	return AnalyticsReport{
		Period:          windowDays,
		Overview:        buildOverview(journals, habits, moods, goals),
		JournalStats:    BuildJournalStats(journals, windowDays),
		HabitStats:      BuildHabitStats(habits, windowDays),
		MoodStats:       BuildMoodStats(moods),
		GoalStats:       BuildGoalStats(goals),
		ActivityHeatmap: BuildActivityHeatmap(journals, habits, moods, windowDays, now, service.location),
		Streaks:         BuildStreaks(journals, habits, windowDays, now, service.location),
	}, nil
}

func buildOverview(journals []models.Journal, habits []models.Habit, moods []models.MoodEntry, goals []models.Goal) Overview {
	overview := Overview{
		TotalJournals:    len(journals),
		TotalHabits:      len(habits),
		TotalMoodEntries: len(moods),
		TotalGoals:       len(goals),
	}

	activeProgress := 0
	for _, goal := range goals {
		switch goal.Status {
		case models.GoalStatusActive:
			overview.ActiveGoals++
			activeProgress += goal.Progress
		case models.GoalStatusCompleted:
			overview.CompletedGoals++
		}
	}
	if overview.ActiveGoals > 0 {
		overview.AverageGoalProgress = roundToInt(float64(activeProgress) / float64(overview.ActiveGoals))
	}

	return overview
}
