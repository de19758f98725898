package db

import (
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

// ListByUserWithProgressSince loads each habit with its progress records
// restricted to the window, newest habit first comes last so the API
// output stays in creation order.
func (repo *HabitRepository) ListByUserWithProgressSince(userID uint, since time.Time) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Preload("Progress", "created_at >= ?", since).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) ListByUserWithCompletedProgressBetween(userID uint, from time.Time, to time.Time) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Preload("Progress", "created_at >= ? AND created_at <= ? AND completed = ?", from, to, true).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error) {
	var habit models.Habit
	result := repo.database.
		Where("id = ? AND user_id = ?", habitID, userID).
		Limit(1).
		Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) Save(habit *models.Habit) error {
	return repo.database.Save(habit).Error
}

func (repo *HabitRepository) DeleteByIDForUser(habitID uint, userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&models.HabitProgress{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", habitID, userID).Delete(&models.Habit{}).Error
	})
}

func (repo *HabitRepository) FindProgressByHabitAndDay(habitID uint, day string) (models.HabitProgress, bool, error) {
	var progress models.HabitProgress
	result := repo.database.
		Where("habit_id = ? AND date = ?", habitID, day).
		Limit(1).
		Find(&progress)
	if result.Error != nil {
		return models.HabitProgress{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HabitProgress{}, false, nil
	}
	return progress, true, nil
}

func (repo *HabitRepository) CreateProgress(progress *models.HabitProgress) error {
	return repo.database.Create(progress).Error
}

func (repo *HabitRepository) SaveProgress(progress *models.HabitProgress) error {
	return repo.database.Save(progress).Error
}
