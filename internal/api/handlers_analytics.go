package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring/internal/services"
)

// GetAnalytics builds the full report for ?period=N days (default 30,
// clamped to 1..365).
func (handler *Handler) GetAnalytics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	windowDays := parsePeriodQuery(c.Query("period"), services.DefaultAnalyticsWindowDays, services.MaxAnalyticsWindowDays)

	report, err := handler.analytics.BuildReport(c.Context(), user.ID, windowDays)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not build analytics report")
	}
	return c.JSON(report)
}

func (handler *Handler) GetWeeklyComparison(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	comparison, err := handler.analytics.BuildWeeklyComparison(c.Context(), user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "could not build weekly comparison")
	}
	return c.JSON(comparison)
}
