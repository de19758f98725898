package db

import (
	"github.com/wellspringhq/wellspring/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) DeleteAccountAndRelatedData(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		var habitIDs []uint
		if err := tx.Model(&models.Habit{}).Where("user_id = ?", userID).Pluck("id", &habitIDs).Error; err != nil {
			return err
		}
		if len(habitIDs) > 0 {
			if err := tx.Where("habit_id IN ?", habitIDs).Delete(&models.HabitProgress{}).Error; err != nil {
				return err
			}
		}

		var goalIDs []uint
		if err := tx.Model(&models.Goal{}).Where("user_id = ?", userID).Pluck("id", &goalIDs).Error; err != nil {
			return err
		}
		if len(goalIDs) > 0 {
			if err := tx.Where("goal_id IN ?", goalIDs).Delete(&models.Milestone{}).Error; err != nil {
				return err
			}
		}

		for _, model := range []any{&models.Journal{}, &models.Habit{}, &models.MoodEntry{}, &models.Goal{}} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
