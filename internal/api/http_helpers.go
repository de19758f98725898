package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring/internal/models"
)

const contextUserKey = "wellspring_user"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return uint(value), nil
}

// parsePeriodQuery reads the analytics window from ?period=N, falling
// back to the default and clamping to the supported range.
func parsePeriodQuery(raw string, fallback int, maximum int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	if value > maximum {
		return maximum
	}
	return value
}
