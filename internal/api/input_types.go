package api

import "github.com/terraincognita07/liftlog/internal/models"

type exercisePayload struct {
	Code        string `json:"code"`
	MuscleGroup string `json:"muscle_group"`
	Name        string `json:"name"`
	Series      string `json:"series"`
	Type        string `json:"type"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type todayRoutinePayload struct {
	ExerciseID uint `json:"exercise_id"`
}

type commentPayload struct {
	Comment string `json:"comment"`
}

type seriesPayload struct {
	RoutineID uint   `json:"routine_id"`
	Series    string `json:"series"`
	Date      string `json:"date"`
}

type completionPayload struct {
	Completed []models.CompletedDay `json:"completed"`
}

type validateKeyPayload struct {
	Key string `json:"key"`
}
