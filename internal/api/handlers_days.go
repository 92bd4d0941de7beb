package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-app/selene/internal/models"
	"github.com/selene-app/selene/internal/services"
)

// dayView is the day record plus the derived display extras the clients
// show next to it.
type dayView struct {
	models.CycleDay
	Suggestion string `json:"suggestion"`
	MoonPhase  string `json:"moonPhase"`
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.days.DayInfo(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch day")
	}

	data, err := handler.store.Load()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch day")
	}

	return c.JSON(dayView{
		CycleDay:   record,
		Suggestion: services.DailySuggestion(record, nil),
		MoonPhase:  services.MoonPhaseEmoji(data.CycleData, day),
	})
}

func (handler *Handler) GetDaySymptoms(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	symptoms, err := handler.days.SymptomsForDay(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch symptoms")
	}
	if symptoms == nil {
		symptoms = []string{}
	}
	return c.JSON(symptoms)
}

func (handler *Handler) AddDaySymptom(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := symptomInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "symptom name required")
	}

	record, err := handler.days.AddSymptom(day, input.Name)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to add symptom")
	}
	return c.JSON(record)
}

func (handler *Handler) RemoveDaySymptom(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, err := handler.days.RemoveSymptom(day, c.Params("name"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to remove symptom")
	}
	return c.JSON(record)
}

func (handler *Handler) GetDayReminders(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	reminders, err := handler.days.RemindersForDay(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch reminders")
	}
	if reminders == nil {
		reminders = []models.Reminder{}
	}
	return c.JSON(reminders)
}

func (handler *Handler) AddDayReminder(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := reminderInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid reminder")
	}

	reminder, err := handler.days.AddReminder(day, services.ReminderInput{
		Title:       input.Title,
		Description: input.Description,
		Time:        input.Time,
	})
	if err != nil {
		if errors.Is(err, services.ErrReminderTitleRequired) {
			return apiError(c, fiber.StatusBadRequest, "reminder title required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to add reminder")
	}
	return c.Status(fiber.StatusCreated).JSON(reminder)
}

func (handler *Handler) UpdateDayReminder(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := reminderUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid reminder update")
	}

	updated, err := handler.days.UpdateReminder(day, c.Params("id"), models.ReminderUpdate{
		Title:       input.Title,
		Description: input.Description,
		Time:        input.Time,
		IsCompleted: input.IsCompleted,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update reminder")
	}
	if !updated {
		return apiError(c, fiber.StatusNotFound, "reminder not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) RemoveDayReminder(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	removed, err := handler.days.RemoveReminder(day, c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to remove reminder")
	}
	if !removed {
		return apiError(c, fiber.StatusNotFound, "reminder not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}
