package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring/internal/services"
)

type moodRequest struct {
	Mood string     `json:"mood"`
	Note string     `json:"note"`
	Date *time.Time `json:"date"`
}

func (req moodRequest) toInput(now time.Time) services.MoodInput {
	date := now
	if req.Date != nil {
		date = *req.Date
	}
	return services.MoodInput{
		Mood: req.Mood,
		Note: req.Note,
		Date: date,
	}
}

func (handler *Handler) ListMoods(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	windowDays := parsePeriodQuery(c.Query("period"), services.DefaultAnalyticsWindowDays, services.MaxAnalyticsWindowDays)
	since := time.Now().In(handler.location).AddDate(0, 0, -windowDays)

	entries, err := handler.moods.ListSince(user.ID, since)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not load mood entries")
	}
	return c.JSON(moodListResponse(entries))
}

func (handler *Handler) CreateMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	var req moodRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.moods.Create(user.ID, req.toInput(time.Now().In(handler.location)))
	if err != nil {
		if errors.Is(err, services.ErrInvalidMood) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "could not record mood")
	}
	return c.Status(fiber.StatusCreated).JSON(moodResponse(entry))
}

func (handler *Handler) UpdateMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req moodRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	input := services.MoodInput{Mood: req.Mood, Note: req.Note}
	if req.Date != nil {
		input.Date = *req.Date
	}

	entry, err := handler.moods.Update(user.ID, entryID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMoodEntryNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrInvalidMood):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "could not update mood entry")
		}
	}
	return c.JSON(moodResponse(entry))
}

func (handler *Handler) DeleteMood(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.moods.Delete(user.ID, entryID); err != nil {
		if errors.Is(err, services.ErrMoodEntryNotFound) {
			return apiError(c, fiber.StatusNotFound, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "could not delete mood entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
