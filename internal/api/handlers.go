package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wellspringhq/wellspring/internal/db"
	"github.com/wellspringhq/wellspring/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	auth      *services.AuthService
	journals  *services.JournalService
	habits    *services.HabitService
	moods     *services.MoodService
	goals     *services.GoalService
	analytics *services.AnalyticsService
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	repos := db.NewRepositories(database)

	return &Handler{
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		auth:         services.NewAuthService(repos.Users),
		journals:     services.NewJournalService(repos.Journals),
		habits:       services.NewHabitService(repos.Habits),
		moods:        services.NewMoodService(repos.Moods),
		goals:        services.NewGoalService(repos.Goals),
		analytics: services.NewAnalyticsService(
			repos.Journals,
			repos.Habits,
			repos.Moods,
			repos.Goals,
			location,
		),
	}
}
