package api

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/liftlog/internal/services"
	"go.uber.org/zap"
)

const (
	errMessageInvalidBody = "invalid request body"
	errMessageInvalidID   = "invalid id"
	errMessageNotFound    = "Not found"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func success(c *fiber.Ctx, extra fiber.Map) error {
	payload := fiber.Map{"success": true}
	for key, value := range extra {
		payload[key] = value
	}
	return c.JSON(payload)
}

func serviceStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingExerciseFields),
		errors.Is(err, services.ErrInvalidExerciseType),
		errors.Is(err, services.ErrMissingExerciseID),
		errors.Is(err, services.ErrMissingSeries),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidCompletedDay):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrExerciseNotFound),
		errors.Is(err, services.ErrRoutineEntryNotFound),
		errors.Is(err, services.ErrHistoryEntryNotFound),
		errors.Is(err, services.ErrPredefinedRoutineNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrExerciseCodeTaken):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// serviceAPIError writes the JSON error for err. Store failures keep their
// message and are logged.
func (handler *Handler) serviceAPIError(c *fiber.Ctx, err error) error {
	status := serviceStatus(err)
	if status == fiber.StatusInternalServerError {
		handler.logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
	}
	return apiError(c, status, err.Error())
}

func parseIDParam(c *fiber.Ctx, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parseIntParam(c *fiber.Ctx, name string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return 0, false
	}
	return value, true
}

// parseJSONBody decodes the body regardless of Content-Type. An empty body
// leaves target untouched.
func parseJSONBody(c *fiber.Ctx, target any) bool {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return true
	}
	return c.App().Config().JSONDecoder(body, target) == nil
}
