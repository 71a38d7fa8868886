package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/liftlog/internal/services"
)

func (handler *Handler) ListExercises(c *fiber.Ctx) error {
	exercises, err := handler.exercises.List()
	if err != nil {
		return handler.serviceAPIError(c, err)
	}
	return c.JSON(exercises)
}

func (handler *Handler) CreateExercise(c *fiber.Ctx) error {
	payload := exercisePayload{}
	if !parseJSONBody(c, &payload) {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidBody)
	}

	exercise, err := handler.exercises.Create(services.ExerciseInput{
		Code:        payload.Code,
		MuscleGroup: payload.MuscleGroup,
		Name:        payload.Name,
		Series:      payload.Series,
		Type:        payload.Type,
		Description: payload.Description,
		URL:         payload.URL,
	})
	if err != nil {
		return handler.serviceAPIError(c, err)
	}
	return success(c, fiber.Map{"id": exercise.ID})
}

func (handler *Handler) DeleteExercise(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidID)
	}
	if err := handler.exercises.Delete(id); err != nil {
		return handler.serviceAPIError(c, err)
	}
	return success(c, nil)
}

func (handler *Handler) ResetExerciseSeries(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidID)
	}
	if err := handler.exercises.ResetSeries(id); err != nil {
		return handler.serviceAPIError(c, err)
	}
	return success(c, nil)
}

// SaveSeries stores the sets done for a today-routine entry.
func (handler *Handler) SaveSeries(c *fiber.Ctx) error {
	payload := seriesPayload{}
	if !parseJSONBody(c, &payload) {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidBody)
	}
	if payload.RoutineID == 0 {
		return apiError(c, fiber.StatusBadRequest, "missing routine_id")
	}

	if _, err := handler.today.SaveSeries(payload.RoutineID, payload.Series, payload.Date); err != nil {
		return handler.serviceAPIError(c, err)
	}
	return success(c, nil)
}
