package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const requestIDKey = "requestid"

func requestID(c *fiber.Ctx) string {
	value, _ := c.Locals(requestIDKey).(string)
	return value
}

// RequestLogger writes one access log line per request.
func (handler *Handler) RequestLogger(c *fiber.Ctx) error {
	started := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if fiberErr, ok := err.(*fiber.Error); ok {
		status = fiberErr.Code
	} else if err != nil {
		status = fiber.StatusInternalServerError
	}

	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(started)),
		zap.String("ip", c.IP()),
		zap.String("request_id", requestID(c)),
	}
	switch {
	case status >= fiber.StatusInternalServerError:
		handler.logger.Error("request", fields...)
	case status >= fiber.StatusBadRequest:
		handler.logger.Warn("request", fields...)
	default:
		handler.logger.Info("request", fields...)
	}
	return err
}

// errorHandler renders errors that escape handlers, such as body limit
// violations or panics turned into errors by the recover middleware.
func (handler *Handler) errorHandler(c *fiber.Ctx, err error) error {
	if fiberErr, ok := err.(*fiber.Error); ok {
		return apiError(c, fiberErr.Code, fiberErr.Message)
	}
	handler.logger.Error("unhandled error", zap.String("path", c.Path()), zap.String("request_id", requestID(c)), zap.Error(err))
	return apiError(c, fiber.StatusInternalServerError, err.Error())
}
