package services

import (
	"errors"
	"strings"
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
)

var (
	ErrHabitNotFound    = errors.New("habit not found")
	ErrHabitNameMissing = errors.New("habit name required")
	ErrInvalidDay       = errors.New("invalid day, want YYYY-MM-DD")
)

type HabitRepository interface {
	ListByUserWithProgressSince(userID uint, since time.Time) ([]models.Habit, error)
	FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error)
	Create(habit *models.Habit) error
	Save(habit *models.Habit) error
	DeleteByIDForUser(habitID uint, userID uint) error
	FindProgressByHabitAndDay(habitID uint, day string) (models.HabitProgress, bool, error)
	CreateProgress(progress *models.HabitProgress) error
	SaveProgress(progress *models.HabitProgress) error
}

type HabitService struct {
	habits HabitRepository
}

func NewHabitService(habits HabitRepository) *HabitService {
	return &HabitService{habits: habits}
}

func (service *HabitService) ListWithProgressSince(userID uint, since time.Time) ([]models.Habit, error) {
	return service.habits.ListByUserWithProgressSince(userID, since)
}

func (service *HabitService) Create(userID uint, name string) (models.Habit, error) {
	if strings.TrimSpace(name) == "" {
		return models.Habit{}, ErrHabitNameMissing
	}
	habit := models.Habit{
		UserID: userID,
		Name:   strings.TrimSpace(name),
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) Rename(userID uint, habitID uint, name string) (models.Habit, error) {
	if strings.TrimSpace(name) == "" {
		return models.Habit{}, ErrHabitNameMissing
	}
	habit, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}
	habit.Name = strings.TrimSpace(name)
	if err := service.habits.Save(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) Delete(userID uint, habitID uint) error {
	_, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrHabitNotFound
	}
	return service.habits.DeleteByIDForUser(habitID, userID)
}

// MarkProgress upserts the single progress record for (habit, day); the
// unique index on that pair is what keeps completion counts honest.
func (service *HabitService) MarkProgress(userID uint, habitID uint, day string, completed bool) (models.HabitProgress, error) {
	if _, err := time.Parse(dayKeyLayout, day); err != nil {
		return models.HabitProgress{}, ErrInvalidDay
	}

	_, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.HabitProgress{}, err
	}
	if !found {
		return models.HabitProgress{}, ErrHabitNotFound
	}

	progress, exists, err := service.habits.FindProgressByHabitAndDay(habitID, day)
	if err != nil {
		return models.HabitProgress{}, err
	}
	if !exists {
		progress = models.HabitProgress{
			HabitID:   habitID,
			Date:      day,
			Completed: completed,
		}
		if err := service.habits.CreateProgress(&progress); err != nil {
			return models.HabitProgress{}, err
		}
		return progress, nil
	}

	progress.Completed = completed
	if err := service.habits.SaveProgress(&progress); err != nil {
		return models.HabitProgress{}, err
	}
	return progress, nil
}
