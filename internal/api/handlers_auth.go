package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring/internal/services"
)

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.auth.Register(req.Email, req.Password, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters with an upper case letter, a lower case letter and a digit")
		default:
			return apiError(c, fiber.StatusInternalServerError, "could not create account")
		}
	}

	if err := handler.setAuthCookie(c, &user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not create session")
	}
	return c.Status(fiber.StatusCreated).JSON(userResponse(&user))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "could not sign in")
	}

	if err := handler.setAuthCookie(c, &user, req.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not create session")
	}
	return c.JSON(userResponse(&user))
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(userResponse(user))
}

type profileRequest struct {
	DisplayName string `json:"display_name"`
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	updated, err := handler.auth.UpdateDisplayName(user.ID, req.DisplayName)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not update profile")
	}
	return c.JSON(userResponse(&updated))
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.auth.DeleteAccount(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not delete account")
	}
	handler.clearAuthCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}
