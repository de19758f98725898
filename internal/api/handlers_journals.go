package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring/internal/services"
)

const journalListLimit = 100

type journalRequest struct {
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Date    *time.Time `json:"date"`
}

func (req journalRequest) toInput(now time.Time) services.JournalInput {
	date := now
	if req.Date != nil {
		date = *req.Date
	}
	return services.JournalInput{
		Title:   req.Title,
		Content: req.Content,
		Date:    date,
	}
}

func (handler *Handler) ListJournals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	journals, err := handler.journals.List(user.ID, journalListLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not load journals")
	}
	return c.JSON(journalListResponse(journals))
}

func (handler *Handler) GetJournal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	journalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	journal, err := handler.journals.Get(user.ID, journalID)
	if err != nil {
		if errors.Is(err, services.ErrJournalNotFound) {
			return apiError(c, fiber.StatusNotFound, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "could not load journal")
	}
	return c.JSON(journalResponse(journal))
}

func (handler *Handler) CreateJournal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	var req journalRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	journal, err := handler.journals.Create(user.ID, req.toInput(time.Now().In(handler.location)))
	if err != nil {
		if errors.Is(err, services.ErrJournalTitleMissing) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "could not create journal")
	}
	return c.Status(fiber.StatusCreated).JSON(journalResponse(journal))
}

func (handler *Handler) UpdateJournal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	journalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	var req journalRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	journal, err := handler.journals.Update(user.ID, journalID, req.toInput(time.Now().In(handler.location)))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJournalNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrJournalTitleMissing):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "could not update journal")
		}
	}
	return c.JSON(journalResponse(journal))
}

func (handler *Handler) DeleteJournal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	journalID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if err := handler.journals.Delete(user.ID, journalID); err != nil {
		if errors.Is(err, services.ErrJournalNotFound) {
			return apiError(c, fiber.StatusNotFound, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "could not delete journal")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
