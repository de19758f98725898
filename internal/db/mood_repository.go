package db

import (
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
	"gorm.io/gorm"
)

type MoodRepository struct {
	database *gorm.DB
}

func NewMoodRepository(database *gorm.DB) *MoodRepository {
	return &MoodRepository{database: database}
}

func (repo *MoodRepository) ListByUserSince(userID uint, since time.Time) ([]models.MoodEntry, error) {
	entries := make([]models.MoodEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *MoodRepository) CountByUserBetween(userID uint, from time.Time, to time.Time) (int, error) {
	var count int64
	if err := repo.database.Model(&models.MoodEntry{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (repo *MoodRepository) FindByIDForUser(entryID uint, userID uint) (models.MoodEntry, bool, error) {
	var entry models.MoodEntry
	result := repo.database.
		Where("id = ? AND user_id = ?", entryID, userID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MoodEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MoodEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *MoodRepository) Create(entry *models.MoodEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *MoodRepository) Save(entry *models.MoodEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *MoodRepository) DeleteByIDForUser(entryID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.MoodEntry{}).Error
}
