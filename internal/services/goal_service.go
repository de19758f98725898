package services

import (
	"errors"
	"strings"
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
)

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrGoalTitleMissing  = errors.New("goal title required")
	ErrInvalidGoalInput  = errors.New("invalid goal category or status")
	ErrMilestoneNoTitle  = errors.New("milestone title required")
)

type GoalRepository interface {
	ListByUserWithMilestones(userID uint) ([]models.Goal, error)
	FindByIDForUser(goalID uint, userID uint) (models.Goal, bool, error)
	Create(goal *models.Goal) error
	Save(goal *models.Goal) error
	UpdateProgress(goalID uint, progress int) error
	DeleteByIDForUser(goalID uint, userID uint) error
	CreateMilestone(milestone *models.Milestone) error
	SaveMilestone(milestone *models.Milestone) error
	FindMilestoneByIDForGoal(milestoneID uint, goalID uint) (models.Milestone, bool, error)
	DeleteMilestone(milestoneID uint) error
}

type GoalService struct {
	goals GoalRepository
}

func NewGoalService(goals GoalRepository) *GoalService {
	return &GoalService{goals: goals}
}

type GoalInput struct {
	Title       string
	Description string
	Category    string
	Status      string
	TargetDate  *time.Time
}

func (service *GoalService) List(userID uint) ([]models.Goal, error) {
	return service.goals.ListByUserWithMilestones(userID)
}

func (service *GoalService) Get(userID uint, goalID uint) (models.Goal, error) {
	goal, found, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return models.Goal{}, err
	}
	if !found {
		return models.Goal{}, ErrGoalNotFound
	}
	return goal, nil
}

func (service *GoalService) Create(userID uint, input GoalInput) (models.Goal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return models.Goal{}, ErrGoalTitleMissing
	}
	category := input.Category
	if category == "" {
		category = models.GoalCategoryPersonal
	}
	status := input.Status
	if status == "" {
		status = models.GoalStatusActive
	}
	if !models.IsValidGoalCategory(category) || !models.IsValidGoalStatus(status) {
		return models.Goal{}, ErrInvalidGoalInput
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    category,
		Status:      status,
		TargetDate:  input.TargetDate,
	}
	if err := service.goals.Create(&goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (service *GoalService) Update(userID uint, goalID uint, input GoalInput) (models.Goal, error) {
	goal, found, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return models.Goal{}, err
	}
	if !found {
		return models.Goal{}, ErrGoalNotFound
	}
	if strings.TrimSpace(input.Title) == "" {
		return models.Goal{}, ErrGoalTitleMissing
	}
	if !models.IsValidGoalCategory(input.Category) || !models.IsValidGoalStatus(input.Status) {
		return models.Goal{}, ErrInvalidGoalInput
	}

	goal.Title = strings.TrimSpace(input.Title)
	goal.Description = input.Description
	goal.Category = input.Category
	goal.Status = input.Status
	goal.TargetDate = input.TargetDate
	if err := service.goals.Save(&goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (service *GoalService) Delete(userID uint, goalID uint) error {
	_, found, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrGoalNotFound
	}
	return service.goals.DeleteByIDForUser(goalID, userID)
}

func (service *GoalService) AddMilestone(userID uint, goalID uint, title string) (models.Goal, error) {
	if strings.TrimSpace(title) == "" {
		return models.Goal{}, ErrMilestoneNoTitle
	}
	_, found, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return models.Goal{}, err
	}
	if !found {
		return models.Goal{}, ErrGoalNotFound
	}

	milestone := models.Milestone{
		GoalID: goalID,
		Title:  strings.TrimSpace(title),
	}
	if err := service.goals.CreateMilestone(&milestone); err != nil {
		return models.Goal{}, err
	}
	return service.syncProgress(userID, goalID)
}

func (service *GoalService) ToggleMilestone(userID uint, goalID uint, milestoneID uint) (models.Goal, error) {
	_, found, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return models.Goal{}, err
	}
	if !found {
		return models.Goal{}, ErrGoalNotFound
	}

	milestone, exists, err := service.goals.FindMilestoneByIDForGoal(milestoneID, goalID)
	if err != nil {
		return models.Goal{}, err
	}
	if !exists {
		return models.Goal{}, ErrMilestoneNotFound
	}

	milestone.Completed = !milestone.Completed
	if milestone.Completed {
		completedAt := time.Now()
		milestone.CompletedAt = &completedAt
	} else {
		milestone.CompletedAt = nil
	}
	if err := service.goals.SaveMilestone(&milestone); err != nil {
		return models.Goal{}, err
	}
	return service.syncProgress(userID, goalID)
}

func (service *GoalService) DeleteMilestone(userID uint, goalID uint, milestoneID uint) (models.Goal, error) {
	_, found, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return models.Goal{}, err
	}
	if !found {
		return models.Goal{}, ErrGoalNotFound
	}

	_, exists, err := service.goals.FindMilestoneByIDForGoal(milestoneID, goalID)
	if err != nil {
		return models.Goal{}, err
	}
	if !exists {
		return models.Goal{}, ErrMilestoneNotFound
	}

	if err := service.goals.DeleteMilestone(milestoneID); err != nil {
		return models.Goal{}, err
	}
	return service.syncProgress(userID, goalID)
}

// syncProgress recomputes goal.Progress from the milestone completion
// ratio after every milestone change. Zero milestones means zero
// progress, not a division error.
func (service *GoalService) syncProgress(userID uint, goalID uint) (models.Goal, error) {
	goal, found, err := service.goals.FindByIDForUser(goalID, userID)
	if err != nil {
		return models.Goal{}, err
	}
	if !found {
		return models.Goal{}, ErrGoalNotFound
	}

	progress := GoalProgress(goal.Milestones)
	if progress != goal.Progress {
		if err := service.goals.UpdateProgress(goalID, progress); err != nil {
			return models.Goal{}, err
		}
		goal.Progress = progress
	}
	return goal, nil
}

func GoalProgress(milestones []models.Milestone) int {
	if len(milestones) == 0 {
		return 0
	}
	completed := 0
	for _, milestone := range milestones {
		if milestone.Completed {
			completed++
		}
	}
	return roundToInt(float64(completed) / float64(len(milestones)) * 100)
}
