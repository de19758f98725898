package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring/internal/models"
)

// Response shapes are built here instead of tagging the models so the
// password hash and gorm bookkeeping never leak into JSON.

func userResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"created_at":   user.CreatedAt,
	}
}

func journalResponse(journal models.Journal) fiber.Map {
	return fiber.Map{
		"id":         journal.ID,
		"title":      journal.Title,
		"content":    journal.Content,
		"date":       journal.Date,
		"created_at": journal.CreatedAt,
		"updated_at": journal.UpdatedAt,
	}
}

func journalListResponse(journals []models.Journal) []fiber.Map {
	out := make([]fiber.Map, 0, len(journals))
	for _, journal := range journals {
		out = append(out, journalResponse(journal))
	}
	return out
}

func habitResponse(habit models.Habit) fiber.Map {
	progress := make([]fiber.Map, 0, len(habit.Progress))
	for _, record := range habit.Progress {
		progress = append(progress, habitProgressResponse(record))
	}
	return fiber.Map{
		"id":         habit.ID,
		"name":       habit.Name,
		"created_at": habit.CreatedAt,
		"progress":   progress,
	}
}

func habitListResponse(habits []models.Habit) []fiber.Map {
	out := make([]fiber.Map, 0, len(habits))
	for _, habit := range habits {
		out = append(out, habitResponse(habit))
	}
	return out
}

func habitProgressResponse(record models.HabitProgress) fiber.Map {
	return fiber.Map{
		"id":        record.ID,
		"habit_id":  record.HabitID,
		"date":      record.Date,
		"completed": record.Completed,
	}
}

func moodResponse(entry models.MoodEntry) fiber.Map {
	return fiber.Map{
		"id":         entry.ID,
		"mood":       entry.Mood,
		"note":       entry.Note,
		"date":       entry.Date,
		"created_at": entry.CreatedAt,
	}
}

func moodListResponse(entries []models.MoodEntry) []fiber.Map {
	out := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		out = append(out, moodResponse(entry))
	}
	return out
}

func goalResponse(goal models.Goal) fiber.Map {
	milestones := make([]fiber.Map, 0, len(goal.Milestones))
	for _, milestone := range goal.Milestones {
		milestones = append(milestones, milestoneResponse(milestone))
	}
	var targetDate *time.Time
	if goal.TargetDate != nil {
		copied := *goal.TargetDate
		targetDate = &copied
	}
	return fiber.Map{
		"id":          goal.ID,
		"title":       goal.Title,
		"description": goal.Description,
		"category":    goal.Category,
		"status":      goal.Status,
		"target_date": targetDate,
		"progress":    goal.Progress,
		"milestones":  milestones,
		"created_at":  goal.CreatedAt,
		"updated_at":  goal.UpdatedAt,
	}
}

func goalListResponse(goals []models.Goal) []fiber.Map {
	out := make([]fiber.Map, 0, len(goals))
	for _, goal := range goals {
		out = append(out, goalResponse(goal))
	}
	return out
}

func milestoneResponse(milestone models.Milestone) fiber.Map {
	return fiber.Map{
		"id":           milestone.ID,
		"title":        milestone.Title,
		"completed":    milestone.Completed,
		"completed_at": milestone.CompletedAt,
	}
}
