package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) GetSnapshot(c *fiber.Ctx) error {
	data, err := handler.store.Load()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load snapshot")
	}
	return c.JSON(data)
}

func (handler *Handler) ResetSnapshot(c *fiber.Ctx) error {
	data, err := handler.store.Reset()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to reset snapshot")
	}
	return c.JSON(data)
}

func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	input := cycleSetupInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle settings")
	}

	data, err := handler.store.UpdateCycleData(input.LastPeriodStart, input.AverageCycleLength, input.PeriodLength)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update cycle settings")
	}
	return c.JSON(data.CycleData)
}
