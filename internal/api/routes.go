package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	api.Get("/snapshot", handler.GetSnapshot)
	api.Delete("/snapshot", handler.ResetSnapshot)
	api.Put("/cycle", handler.UpdateCycle)

	days := api.Group("/days")
	days.Get("/:date", handler.GetDay)
	days.Get("/:date/symptoms", handler.GetDaySymptoms)
	days.Post("/:date/symptoms", handler.AddDaySymptom)
	days.Delete("/:date/symptoms/:name", handler.RemoveDaySymptom)
	days.Get("/:date/reminders", handler.GetDayReminders)
	days.Post("/:date/reminders", handler.AddDayReminder)
	days.Patch("/:date/reminders/:id", handler.UpdateDayReminder)
	days.Delete("/:date/reminders/:id", handler.RemoveDayReminder)

	moods := api.Group("/moods")
	moods.Get("", handler.GetMoods)
	moods.Post("", handler.AddMood)
	moods.Get("/trend", handler.GetMoodTrend)

	saved := api.Group("/symptoms/saved")
	saved.Get("", handler.GetSavedSymptoms)
	saved.Post("", handler.AddSavedSymptom)
	saved.Delete("/:name", handler.RemoveSavedSymptom)

	conditions := api.Group("/conditions")
	conditions.Get("", handler.GetChronicConditions)
	conditions.Post("", handler.AddChronicCondition)
	conditions.Delete("/:name", handler.RemoveChronicCondition)

	export := api.Group("/export")
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}
