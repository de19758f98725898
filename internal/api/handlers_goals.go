package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring/internal/services"
)

type goalRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	TargetDate  *time.Time `json:"target_date"`
}

func (req goalRequest) toInput() services.GoalInput {
	return services.GoalInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		TargetDate:  req.TargetDate,
	}
}

type milestoneRequest struct {
	Title string `json:"title"`
}

func goalErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrGoalNotFound), errors.Is(err, services.ErrMilestoneNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrGoalTitleMissing),
		errors.Is(err, services.ErrInvalidGoalInput),
		errors.Is(err, services.ErrMilestoneNoTitle):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func goalError(c *fiber.Ctx, err error, fallback string) error {
	status := goalErrorStatus(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = fallback
	}
	return apiError(c, status, message)
}

func (handler *Handler) ListGoals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	goals, err := handler.goals.List(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not load goals")
	}
	return c.JSON(goalListResponse(goals))
}

func (handler *Handler) GetGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	goal, err := handler.goals.Get(user.ID, goalID)
	if err != nil {
		return goalError(c, err, "could not load goal")
	}
	return c.JSON(goalResponse(goal))
}

func (handler *Handler) CreateGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	var req goalRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	goal, err := handler.goals.Create(user.ID, req.toInput())
	if err != nil {
		return goalError(c, err, "could not create goal")
	}
	return c.Status(fiber.StatusCreated).JSON(goalResponse(goal))
}

func (handler *Handler) UpdateGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req goalRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	goal, err := handler.goals.Update(user.ID, goalID, req.toInput())
	if err != nil {
		return goalError(c, err, "could not update goal")
	}
	return c.JSON(goalResponse(goal))
}

func (handler *Handler) DeleteGoal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.goals.Delete(user.ID, goalID); err != nil {
		return goalError(c, err, "could not delete goal")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) AddMilestone(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req milestoneRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	goal, err := handler.goals.AddMilestone(user.ID, goalID, req.Title)
	if err != nil {
		return goalError(c, err, "could not add milestone")
	}
	return c.Status(fiber.StatusCreated).JSON(goalResponse(goal))
}

func (handler *Handler) ToggleMilestone(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	milestoneID, err := parseIDParam(c, "milestoneID")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	goal, err := handler.goals.ToggleMilestone(user.ID, goalID, milestoneID)
	if err != nil {
		return goalError(c, err, "could not update milestone")
	}
	return c.JSON(goalResponse(goal))
}

func (handler *Handler) DeleteMilestone(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	milestoneID, err := parseIDParam(c, "milestoneID")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	goal, err := handler.goals.DeleteMilestone(user.ID, goalID, milestoneID)
	if err != nil {
		return goalError(c, err, "could not delete milestone")
	}
	return c.JSON(goalResponse(goal))
}
