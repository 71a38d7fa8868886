package api

import (
	"net/http"
	"testing"

	"github.com/terraincognita07/liftlog/internal/db"
	"github.com/terraincognita07/liftlog/internal/models"
	"github.com/terraincognita07/liftlog/internal/services"
)

func TestPredefinedRoutineLookup(t *testing.T) {
	app, database := newTestApp(t)

	bench := createExercise(t, app, benchPressPayload("001"))
	squat := createExercise(t, app, benchPressPayload("003"))
	routines := db.NewPredefinedRoutineRepository(database)
	if err := routines.Upsert(&models.PredefinedRoutine{Week: 1, Number: 1, Name: "Push", ExerciseIDs: []uint{squat, bench}}); err != nil {
		t.Fatalf("upsert routine: %v", err)
	}

	response := doRequest(t, app, http.MethodGet, "/predefined_routines/1/1", nil, nil)
	expectStatus(t, response, http.StatusOK)
	view := services.PredefinedRoutineView{}
	decodeBody(t, response, &view)
	if view.Name != "Push" || len(view.Exercises) != 2 {
		t.Fatalf("unexpected routine view: %+v", view)
	}
	if view.Exercises[0].ID != squat || view.Exercises[1].ID != bench {
		t.Fatalf("expected exercise order preserved, got %+v", view.Exercises)
	}

	list := []services.PredefinedRoutineView{}
	decodeBody(t, doRequest(t, app, http.MethodGet, "/predefined_routines", nil, nil), &list)
	if len(list) != 1 {
		t.Fatalf("expected one routine, got %d", len(list))
	}

	response = doRequest(t, app, http.MethodGet, "/predefined_routines/2/1", nil, nil)
	expectStatus(t, response, http.StatusNotFound)
	if message := readAPIError(t, response); message == "" {
		t.Fatal("expected error message for missing routine")
	}
	expectStatus(t, doRequest(t, app, http.MethodGet, "/predefined_routines/0/1", nil, nil), http.StatusNotFound)
	expectStatus(t, doRequest(t, app, http.MethodGet, "/predefined_routines/1/-3", nil, nil), http.StatusNotFound)
	expectStatus(t, doRequest(t, app, http.MethodGet, "/predefined_routines/x/1", nil, nil), http.StatusBadRequest)
}

func TestRoutineCompletionState(t *testing.T) {
	app, _ := newTestApp(t)

	state := struct {
		Completed []models.CompletedDay `json:"completed"`
	}{}
	decodeBody(t, doRequest(t, app, http.MethodGet, "/predefined_routines_completed", nil, nil), &state)
	if state.Completed == nil || len(state.Completed) != 0 {
		t.Fatalf("expected empty completed list, got %#v", state.Completed)
	}

	body := map[string]any{"completed": []map[string]int{{"week": 2, "day": 1}, {"week": 1, "day": 3}, {"week": 2, "day": 1}}}
	expectStatus(t, doRequest(t, app, http.MethodPost, "/predefined_routines_completed", body, nil), http.StatusOK)

	decodeBody(t, doRequest(t, app, http.MethodGet, "/predefined_routines_completed", nil, nil), &state)
	want := []models.CompletedDay{{Week: 1, Day: 3}, {Week: 2, Day: 1}}
	if len(state.Completed) != len(want) || state.Completed[0] != want[0] || state.Completed[1] != want[1] {
		t.Fatalf("expected %+v, got %+v", want, state.Completed)
	}

	body = map[string]any{"completed": []map[string]int{{"week": 0, "day": 1}}}
	expectStatus(t, doRequest(t, app, http.MethodPost, "/predefined_routines_completed", body, nil), http.StatusBadRequest)
}
