package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetSavedSymptoms(c *fiber.Ctx) error {
	symptoms, err := handler.store.SavedSymptoms()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch saved symptoms")
	}
	return c.JSON(stringList(symptoms))
}

func (handler *Handler) AddSavedSymptom(c *fiber.Ctx) error {
	input := symptomInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "symptom name required")
	}

	symptoms, err := handler.store.AddSavedSymptom(input.Name)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save symptom")
	}
	return c.JSON(stringList(symptoms))
}

func (handler *Handler) RemoveSavedSymptom(c *fiber.Ctx) error {
	symptoms, err := handler.store.RemoveSavedSymptom(c.Params("name"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to remove symptom")
	}
	return c.JSON(stringList(symptoms))
}

func (handler *Handler) GetChronicConditions(c *fiber.Ctx) error {
	conditions, err := handler.store.ChronicConditions()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch conditions")
	}
	return c.JSON(stringList(conditions))
}

func (handler *Handler) AddChronicCondition(c *fiber.Ctx) error {
	input := symptomInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "condition name required")
	}

	conditions, err := handler.store.AddChronicCondition(input.Name)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save condition")
	}
	return c.JSON(stringList(conditions))
}

func (handler *Handler) RemoveChronicCondition(c *fiber.Ctx) error {
	conditions, err := handler.store.RemoveChronicCondition(c.Params("name"))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to remove condition")
	}
	return c.JSON(stringList(conditions))
}

func stringList(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
