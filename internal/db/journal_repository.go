package db

import (
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
	"gorm.io/gorm"
)

type JournalRepository struct {
	database *gorm.DB
}

func NewJournalRepository(database *gorm.DB) *JournalRepository {
	return &JournalRepository{database: database}
}

func (repo *JournalRepository) ListByUserSince(userID uint, since time.Time) ([]models.Journal, error) {
	journals := make([]models.Journal, 0)
	if err := repo.database.
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Find(&journals).Error; err != nil {
		return nil, err
	}
	return journals, nil
}

func (repo *JournalRepository) ListByUser(userID uint, limit int) ([]models.Journal, error) {
	query := repo.database.Where("user_id = ?", userID).Order("date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	journals := make([]models.Journal, 0)
	if err := query.Find(&journals).Error; err != nil {
		return nil, err
	}
	return journals, nil
}

func (repo *JournalRepository) CountByUserBetween(userID uint, from time.Time, to time.Time) (int, error) {
	var count int64
	if err := repo.database.Model(&models.Journal{}).
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (repo *JournalRepository) FindByIDForUser(journalID uint, userID uint) (models.Journal, bool, error) {
	var journal models.Journal
	result := repo.database.
		Where("id = ? AND user_id = ?", journalID, userID).
		Limit(1).
		Find(&journal)
	if result.Error != nil {
		return models.Journal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Journal{}, false, nil
	}
	return journal, true, nil
}

func (repo *JournalRepository) Create(journal *models.Journal) error {
	return repo.database.Create(journal).Error
}

func (repo *JournalRepository) Save(journal *models.Journal) error {
	return repo.database.Save(journal).Error
}

func (repo *JournalRepository) DeleteByIDForUser(journalID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", journalID, userID).Delete(&models.Journal{}).Error
}
