package api

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-app/selene/internal/models"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDayParam(raw string) (time.Time, error) {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		decoded = raw
	}
	return time.Parse(models.DateLayout, decoded)
}
