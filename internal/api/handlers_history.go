package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/liftlog/internal/models"
)

type historyEntryView struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	SeriesString string `json:"series_string"`
}

func (handler *Handler) ListHistory(c *fiber.Ctx) error {
	exerciseID, ok := parseIDParam(c, "exercise_id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidID)
	}

	if _, err := handler.exercises.Get(exerciseID); err != nil {
		return handler.serviceAPIError(c, err)
	}

	entries, err := handler.history.ListForExercise(exerciseID)
	if err != nil {
		return handler.serviceAPIError(c, err)
	}
	return c.JSON(historyViews(entries))
}

func (handler *Handler) DeleteHistoryForExercise(c *fiber.Ctx) error {
	exerciseID, ok := parseIDParam(c, "exercise_id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidID)
	}

	deleted, err := handler.history.DeleteAllForExercise(exerciseID)
	if err != nil {
		return handler.serviceAPIError(c, err)
	}
	return success(c, fiber.Map{"deleted": deleted})
}

func (handler *Handler) DeleteHistoryEntry(c *fiber.Ctx) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, errMessageInvalidID)
	}
	if err := handler.history.DeleteEntry(id); err != nil {
		return handler.serviceAPIError(c, err)
	}
	return success(c, nil)
}

func historyViews(entries []models.HistoryEntry) []historyEntryView {
	views := make([]historyEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, historyEntryView{
			ID:           entry.ID,
			Date:         entry.Date,
			SeriesString: entry.SeriesString,
		})
	}
	return views
}
