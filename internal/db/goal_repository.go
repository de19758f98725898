package db

import (
	"github.com/wellspringhq/wellspring/internal/models"
	"gorm.io/gorm"
)

type GoalRepository struct {
	database *gorm.DB
}

func NewGoalRepository(database *gorm.DB) *GoalRepository {
	return &GoalRepository{database: database}
}

func (repo *GoalRepository) ListByUserWithMilestones(userID uint) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := repo.database.
		Preload("Milestones", func(query *gorm.DB) *gorm.DB {
			return query.Order("milestones.created_at ASC, milestones.id ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (repo *GoalRepository) FindByIDForUser(goalID uint, userID uint) (models.Goal, bool, error) {
	var goal models.Goal
	result := repo.database.
		Preload("Milestones", func(query *gorm.DB) *gorm.DB {
			return query.Order("milestones.created_at ASC, milestones.id ASC")
		}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Limit(1).
		Find(&goal)
	if result.Error != nil {
		return models.Goal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Goal{}, false, nil
	}
	return goal, true, nil
}

func (repo *GoalRepository) Create(goal *models.Goal) error {
	return repo.database.Create(goal).Error
}

func (repo *GoalRepository) Save(goal *models.Goal) error {
	return repo.database.Save(goal).Error
}

func (repo *GoalRepository) UpdateProgress(goalID uint, progress int) error {
	return repo.database.Model(&models.Goal{}).Where("id = ?", goalID).Update("progress", progress).Error
}

func (repo *GoalRepository) DeleteByIDForUser(goalID uint, userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", goalID).Delete(&models.Milestone{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.Goal{}).Error
	})
}

func (repo *GoalRepository) CreateMilestone(milestone *models.Milestone) error {
	return repo.database.Create(milestone).Error
}

func (repo *GoalRepository) SaveMilestone(milestone *models.Milestone) error {
	return repo.database.Save(milestone).Error
}

func (repo *GoalRepository) FindMilestoneByIDForGoal(milestoneID uint, goalID uint) (models.Milestone, bool, error) {
	var milestone models.Milestone
	result := repo.database.
		Where("id = ? AND goal_id = ?", milestoneID, goalID).
		Limit(1).
		Find(&milestone)
	if result.Error != nil {
		return models.Milestone{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Milestone{}, false, nil
	}
	return milestone, true, nil
}

func (repo *GoalRepository) DeleteMilestone(milestoneID uint) error {
	return repo.database.Delete(&models.Milestone{}, milestoneID).Error
}
