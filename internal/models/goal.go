package models

import "time"

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusArchived  = "archived"
)

const (
	GoalCategoryPersonal = "personal"
	GoalCategoryHealth   = "health"
	GoalCategoryCareer   = "career"
	GoalCategoryLearning = "learning"
	GoalCategoryFinance  = "finance"
)

var GoalStatuses = []string{GoalStatusActive, GoalStatusCompleted, GoalStatusArchived}

var GoalCategories = []string{
	GoalCategoryPersonal,
	GoalCategoryHealth,
	GoalCategoryCareer,
	GoalCategoryLearning,
	GoalCategoryFinance,
}

func IsValidGoalStatus(status string) bool {
	for _, candidate := range GoalStatuses {
		if candidate == status {
			return true
		}
	}
	return false
}

func IsValidGoalCategory(category string) bool {
	for _, candidate := range GoalCategories {
		if candidate == category {
			return true
		}
	}
	return false
}

// Goal.Progress is not user-set: the goal service recomputes it from the
// milestone completion ratio on every milestone change.
type Goal struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Category    string `gorm:"not null;default:personal"`
	Status      string `gorm:"not null;default:active"`
	TargetDate  *time.Time
	Progress    int `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Milestones  []Milestone `gorm:"foreignKey:GoalID"`
}

type Milestone struct {
	ID          uint   `gorm:"primaryKey"`
	GoalID      uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Completed   bool   `gorm:"not null;default:false"`
	CompletedAt *time.Time
	CreatedAt   time.Time
}
