package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler, requireAccess bool) {
	// guarded puts the access check in front of a mutating route when the
	// gate is on. Unmatched paths never reach it and fall through to 404.
	guarded := func(next fiber.Handler) []fiber.Handler {
		if !requireAccess {
			return []fiber.Handler{next}
		}
		return []fiber.Handler{handler.AccessRequired, next}
	}

	app.Get("/healthz", handler.Health)
	app.Post("/validate_key", handler.ValidateKey)

	exercises := app.Group("/exercises")
	exercises.Get("", handler.ListExercises)
	exercises.Post("", guarded(handler.CreateExercise)...)
	exercises.Put("/serie", guarded(handler.SaveSeries)...)
	exercises.Delete("/:id", guarded(handler.DeleteExercise)...)
	exercises.Put("/:id/reset_series", guarded(handler.ResetExerciseSeries)...)

	today := app.Group("/today_routine")
	today.Get("", handler.ListTodayRoutine)
	today.Post("", guarded(handler.AddTodayRoutineEntry)...)
	today.Put("/:id/comment", guarded(handler.UpdateTodayRoutineComment)...)
	today.Delete("/:id", guarded(handler.RemoveTodayRoutineEntry)...)

	history := app.Group("/history")
	history.Delete("/entry/:id", guarded(handler.DeleteHistoryEntry)...)
	history.Get("/:exercise_id", handler.ListHistory)
	history.Delete("/:exercise_id", guarded(handler.DeleteHistoryForExercise)...)

	app.Get("/predefined_routines_completed", handler.GetCompletedRoutines)
	app.Post("/predefined_routines_completed", guarded(handler.SetCompletedRoutines)...)

	routines := app.Group("/predefined_routines")
	routines.Get("", handler.ListPredefinedRoutines)
	routines.Get("/:week/:number", handler.GetPredefinedRoutine)
}
