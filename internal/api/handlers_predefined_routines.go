package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListPredefinedRoutines(c *fiber.Ctx) error {
	routines, err := handler.routines.List()
	if err != nil {
		return handler.serviceAPIError(c, err)
	}
	return c.JSON(routines)
}

func (handler *Handler) GetPredefinedRoutine(c *fiber.Ctx) error {
	week, weekOK := parseIntParam(c, "week")
	number, numberOK := parseIntParam(c, "number")
	if !weekOK || !numberOK {
		return apiError(c, fiber.StatusBadRequest, "invalid week or number")
	}

	routine, err := handler.routines.GetByWeekAndNumber(week, number)
	if err != nil {
		return handler.serviceAPIError(c, err)
	}
	return c.JSON(routine)
}

func (handler *Handler) GetCompletedRoutines(c *fiber.Ctx) error {
	completed, err := handler.routines.CompletionState()
	if err != nil {
		return handler.serviceAPIError(c, err)
	}
	return c.JSON(fiber.Map{"completed": completed})
}

func (handler *Handler) SetCompletedRoutines(c *fiber.Ctx) error {
	payload := completionPayload{}
	if !parseJSONBody(c, &payload) {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidBody)
	}

	if _, err := handler.routines.SetCompletionState(payload.Completed); err != nil {
		return handler.serviceAPIError(c, err)
	}
	return success(c, nil)
}
