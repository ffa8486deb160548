package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/setup-status", handler.SetupStatus)
	api.Post("/onboarding", handler.CompleteOnboarding)

	auth := api.Group("/auth")
	auth.Post("/unlock", handler.Unlock)
	auth.Post("/lock", handler.Lock)

	api.Get("/profile", handler.UnlockRequired, handler.GetProfile)
	api.Put("/profile", handler.UnlockRequired, handler.UpdateProfile)
	api.Get("/stats", handler.UnlockRequired, handler.GetStats)
	api.Get("/dashboard", handler.UnlockRequired, handler.GetDashboard)
	api.Get("/calendar", handler.UnlockRequired, handler.GetCalendar)
	api.Get("/days/:date/status", handler.UnlockRequired, handler.GetDayStatus)

	periods := api.Group("/periods", handler.UnlockRequired)
	periods.Post("", handler.CreatePeriod)
	periods.Put("/:date", handler.UpdatePeriod)
	periods.Delete("/:date", handler.DeletePeriod)

	api.Post("/moods", handler.UnlockRequired, handler.LogMood)

	milestones := api.Group("/milestones", handler.UnlockRequired)
	milestones.Get("", handler.ListMilestones)
	milestones.Post("", handler.AddMilestone)
	milestones.Delete("/:id", handler.DeleteMilestone)

	specialDates := api.Group("/special-dates", handler.UnlockRequired)
	specialDates.Get("", handler.ListSpecialDates)
	specialDates.Get("/upcoming", handler.UpcomingSpecialDates)
	specialDates.Post("", handler.AddSpecialDate)
	specialDates.Delete("/:id", handler.DeleteSpecialDate)

	journal := api.Group("/journal", handler.UnlockRequired)
	journal.Get("", handler.ListJournal)
	journal.Post("", handler.AddJournalEntry)

	settings := api.Group("/settings", handler.UnlockRequired)
	settings.Put("/preferences", handler.UpdatePreferences)
	settings.Post("/passcode", handler.ChangePasscode)
	settings.Post("/clear-data", handler.ClearAllData)

	export := api.Group("/export", handler.UnlockRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
