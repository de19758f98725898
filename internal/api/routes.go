package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Put("/me", handler.AuthRequired, handler.UpdateProfile)
	auth.Delete("/me", handler.AuthRequired, handler.DeleteAccount)

	journals := api.Group("/journals", handler.AuthRequired)
	journals.Get("", handler.ListJournals)
	journals.Post("", handler.CreateJournal)
	journals.Get("/:id", handler.GetJournal)
	journals.Put("/:id", handler.UpdateJournal)
	journals.Delete("/:id", handler.DeleteJournal)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.ListHabits)
	habits.Post("", handler.CreateHabit)
	habits.Put("/:id", handler.RenameHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/progress", handler.MarkHabitProgress)

	moods := api.Group("/moods", handler.AuthRequired)
	moods.Get("", handler.ListMoods)
	moods.Post("", handler.CreateMood)
	moods.Put("/:id", handler.UpdateMood)
	moods.Delete("/:id", handler.DeleteMood)

	goals := api.Group("/goals", handler.AuthRequired)
	goals.Get("", handler.ListGoals)
	goals.Post("", handler.CreateGoal)
	goals.Get("/:id", handler.GetGoal)
	goals.Put("/:id", handler.UpdateGoal)
	goals.Delete("/:id", handler.DeleteGoal)
	goals.Post("/:id/milestones", handler.AddMilestone)
	goals.Patch("/:id/milestones/:milestoneID", handler.ToggleMilestone)
	goals.Delete("/:id/milestones/:milestoneID", handler.DeleteMilestone)

	analytics := api.Group("/analytics", handler.AuthRequired)
	analytics.Get("", handler.GetAnalytics)
	analytics.Get("/weekly", handler.GetWeeklyComparison)
}
