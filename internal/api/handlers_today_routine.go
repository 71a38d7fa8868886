package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListTodayRoutine(c *fiber.Ctx) error {
	items, err := handler.today.ListToday()
	if err != nil {
		return handler.serviceAPIError(c, err)
	}
	return c.JSON(items)
}

func (handler *Handler) AddTodayRoutineEntry(c *fiber.Ctx) error {
	payload := todayRoutinePayload{}
	if !parseJSONBody(c, &payload) {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidBody)
	}

	entry, err := handler.today.Add(payload.ExerciseID)
	if err != nil {
		return handler.serviceAPIError(c, err)
	}
	return success(c, fiber.Map{"id": entry.ID})
}

func (handler *Handler) UpdateTodayRoutineComment(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidID)
	}
	payload := commentPayload{}
	if !parseJSONBody(c, &payload) {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidBody)
	}

	if err := handler.today.SetComment(id, payload.Comment); err != nil {
		return handler.serviceAPIError(c, err)
	}
	return success(c, nil)
}

func (handler *Handler) RemoveTodayRoutineEntry(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidID)
	}
	if err := handler.today.Remove(id); err != nil {
		return handler.serviceAPIError(c, err)
	}
	return success(c, nil)
}
