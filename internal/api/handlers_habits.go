package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring/internal/services"
)

type habitRequest struct {
	Name string `json:"name"`
}

type habitProgressRequest struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// ListHabits returns the user's habits with progress from the requested
// window attached, ?period=N days with the analytics defaults.
func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	windowDays := parsePeriodQuery(c.Query("period"), services.DefaultAnalyticsWindowDays, services.MaxAnalyticsWindowDays)
	since := time.Now().In(handler.location).AddDate(0, 0, -windowDays)

	habits, err := handler.habits.ListWithProgressSince(user.ID, since)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not load habits")
	}
	return c.JSON(habitListResponse(habits))
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	var req habitRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	habit, err := handler.habits.Create(user.ID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrHabitNameMissing) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "could not create habit")
	}
	return c.Status(fiber.StatusCreated).JSON(habitResponse(habit))
}

func (handler *Handler) RenameHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req habitRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	habit, err := handler.habits.Rename(user.ID, habitID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrHabitNameMissing):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "could not rename habit")
		}
	}
	return c.JSON(habitResponse(habit))
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.habits.Delete(user.ID, habitID); err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return apiError(c, fiber.StatusNotFound, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "could not delete habit")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkHabitProgress upserts the completion flag for one habit on one day.
func (handler *Handler) MarkHabitProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req habitProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Date == "" {
		req.Date = services.DayKey(time.Now(), handler.location)
	}

	record, err := handler.habits.MarkProgress(user.ID, habitID, req.Date, req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrInvalidDay):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "could not record progress")
		}
	}
	return c.JSON(habitProgressResponse(record))
}
