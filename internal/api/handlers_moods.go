package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-app/selene/internal/services"
)

const defaultTrendDays = 7

func (handler *Handler) GetMoods(c *fiber.Ctx) error {
	rawDate := c.Query("date")
	if rawDate == "" {
		entries, err := handler.moods.AllEntries()
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to fetch mood entries")
		}
		return c.JSON(entries)
	}

	day, err := parseDayParam(rawDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entries, err := handler.moods.EntriesForDate(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch mood entries")
	}
	return c.JSON(entries)
}

func (handler *Handler) AddMood(c *fiber.Ctx) error {
	input := moodInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	entry, err := handler.moods.Append(services.MoodEntryInput{
		Mood:       input.Mood,
		Notes:      input.Notes,
		Symptoms:   input.Symptoms,
		MoodLabels: input.MoodLabels,
		Timestamp:  input.Timestamp,
	})
	if err != nil {
		if errors.Is(err, services.ErrMoodTimestampInvalid) {
			return apiError(c, fiber.StatusBadRequest, "invalid timestamp")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to add mood entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) GetMoodTrend(c *fiber.Ctx) error {
	days := defaultTrendDays
	if rawDays := c.Query("days"); rawDays != "" {
		parsed, err := strconv.Atoi(rawDays)
		if err != nil || parsed < 1 || parsed > 90 {
			return apiError(c, fiber.StatusBadRequest, "invalid trend window")
		}
		days = parsed
	}

	entries, err := handler.moods.AllEntries()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch mood entries")
	}

	return c.JSON(services.MoodTrend(entries, time.Now().In(handler.location), days))
}
