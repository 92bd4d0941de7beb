package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/selene-app/selene/internal/services"
)

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	data, err := handler.store.Load()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load snapshot")
	}

	payload, err := services.BuildSnapshotExport(data)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set("Content-Type", "application/json")
	c.Set("Content-Disposition", `attachment; filename="selene-export.json"`)
	return c.Send(payload)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	entries, err := handler.moods.AllEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch mood entries")
	}

	output, err := services.BuildMoodHistoryCSV(entries)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="selene-moods.csv"`)
	return c.SendString(output)
}
