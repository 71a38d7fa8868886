package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/liftlog/internal/models"
	"gorm.io/datatypes"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	return NewRepositories(openTestDatabase(t, filepath.Join(t.TempDir(), "liftlog-repos.db")))
}

func createTestExercise(t *testing.T, repos *Repositories, code string) models.Exercise {
	t.Helper()
	exercise := models.Exercise{
		Code:           code,
		MuscleGroup:    "Legs",
		Name:           "Squat " + code,
		Series:         "S1 R5",
		SeriesOriginal: "S1 R5",
		Type:           models.ExerciseTypeFixedSeries,
	}
	require.NoError(t, repos.Exercises.Create(&exercise))
	return exercise
}

func TestExerciseRepositoryUniqueCodeAndLookups(t *testing.T) {
	repos := newTestRepositories(t)

	first := createTestExercise(t, repos, "001")
	second := createTestExercise(t, repos, "002")

	duplicate := models.Exercise{Code: "001", MuscleGroup: "x", Name: "x", Series: "x", Type: models.ExerciseTypeFixedSeries}
	assert.Error(t, repos.Exercises.Create(&duplicate))

	exists, err := repos.Exercises.CodeExists("002")
	require.NoError(t, err)
	assert.True(t, exists)

	byCode, err := repos.Exercises.ListByCodes([]string{"002", "404"})
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, second.ID, byCode[0].ID)

	byID, err := repos.Exercises.ListByIDs([]uint{second.ID, first.ID})
	require.NoError(t, err)
	assert.Len(t, byID, 2)

	empty, err := repos.Exercises.ListByIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	count, err := repos.Exercises.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestSeriesUpdateAndReset(t *testing.T) {
	repos := newTestRepositories(t)
	exercise := createTestExercise(t, repos, "001")

	entry := models.HistoryEntry{ExerciseID: exercise.ID, Date: "2026-03-09", SeriesString: "S1 R8"}
	stored, err := repos.History.AppendWithSeriesUpdate(&entry)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.NotZero(t, entry.ID)

	updated, _, err := repos.Exercises.FindByID(exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, "S1 R8", updated.Series)
	assert.Equal(t, "S1 R5", updated.SeriesOriginal)

	reset, err := repos.Exercises.ResetSeries(exercise.ID)
	require.NoError(t, err)
	assert.True(t, reset)
	updated, _, err = repos.Exercises.FindByID(exercise.ID)
	require.NoError(t, err)
	assert.Equal(t, "S1 R5", updated.Series)

	orphan := models.HistoryEntry{ExerciseID: 999, Date: "2026-03-09", SeriesString: "S1"}
	stored, err = repos.History.AppendWithSeriesUpdate(&orphan)
	require.NoError(t, err)
	assert.False(t, stored)
	entries, err := repos.History.ListByExercise(999)
	require.NoError(t, err)
	assert.Empty(t, entries)

	missing, err := repos.Exercises.ResetSeries(999)
	require.NoError(t, err)
	assert.False(t, missing)
}

func TestLatestOnDatePicksLastSavedEntry(t *testing.T) {
	repos := newTestRepositories(t)
	bench := createTestExercise(t, repos, "001")
	squat := createTestExercise(t, repos, "002")

	for _, entry := range []models.HistoryEntry{
		{ExerciseID: bench.ID, Date: "2026-03-09", SeriesString: "first"},
		{ExerciseID: bench.ID, Date: "2026-03-09", SeriesString: "second"},
		{ExerciseID: bench.ID, Date: "2026-03-10", SeriesString: "tomorrow"},
		{ExerciseID: squat.ID, Date: "2026-03-08", SeriesString: "yesterday"},
	} {
		entry := entry
		_, err := repos.History.AppendWithSeriesUpdate(&entry)
		require.NoError(t, err)
	}

	latest, err := repos.History.LatestOnDate([]uint{bench.ID, squat.ID}, "2026-03-09")
	require.NoError(t, err)
	require.Contains(t, latest, bench.ID)
	assert.Equal(t, "second", latest[bench.ID].SeriesString)
	assert.NotContains(t, latest, squat.ID)
}

func TestDeleteCascadeRemovesDependentsOnly(t *testing.T) {
	repos := newTestRepositories(t)
	keep := createTestExercise(t, repos, "001")
	drop := createTestExercise(t, repos, "002")

	for _, exerciseID := range []uint{keep.ID, drop.ID} {
		require.NoError(t, repos.TodayRoutine.Create(&models.TodayRoutineEntry{ExerciseID: exerciseID, Date: "2026-03-09"}))
		_, err := repos.History.AppendWithSeriesUpdate(&models.HistoryEntry{ExerciseID: exerciseID, Date: "2026-03-09", SeriesString: "S1"})
		require.NoError(t, err)
	}

	deleted, err := repos.Exercises.DeleteCascade(drop.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	entries, err := repos.TodayRoutine.ListByDate("2026-03-09")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, keep.ID, entries[0].ExerciseID)

	dropHistory, err := repos.History.ListByExercise(drop.ID)
	require.NoError(t, err)
	assert.Empty(t, dropHistory)
	keepHistory, err := repos.History.ListByExercise(keep.ID)
	require.NoError(t, err)
	assert.Len(t, keepHistory, 1)

	deleted, err = repos.Exercises.DeleteCascade(drop.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTodayRoutineRepositoryMutations(t *testing.T) {
	repos := newTestRepositories(t)
	exercise := createTestExercise(t, repos, "001")

	entry := models.TodayRoutineEntry{ExerciseID: exercise.ID, Date: "2026-03-09"}
	require.NoError(t, repos.TodayRoutine.Create(&entry))

	updated, err := repos.TodayRoutine.UpdateComment(entry.ID, "heavy day")
	require.NoError(t, err)
	assert.True(t, updated)
	stored, found, err := repos.TodayRoutine.FindByID(entry.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "heavy day", stored.Comment)

	updated, err = repos.TodayRoutine.UpdateComment(999, "x")
	require.NoError(t, err)
	assert.False(t, updated)

	removed, err := repos.TodayRoutine.DeleteByID(entry.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	_, found, err = repos.TodayRoutine.FindByID(entry.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPredefinedRoutineUpsertReplacesPair(t *testing.T) {
	repos := newTestRepositories(t)

	require.NoError(t, repos.PredefinedRoutines.Upsert(&models.PredefinedRoutine{Week: 1, Number: 2, Name: "Pull", ExerciseIDs: []uint{3, 1}}))
	require.NoError(t, repos.PredefinedRoutines.Upsert(&models.PredefinedRoutine{Week: 1, Number: 1, Name: "Push", ExerciseIDs: []uint{2}}))
	require.NoError(t, repos.PredefinedRoutines.Upsert(&models.PredefinedRoutine{Week: 1, Number: 2, Name: "Pull B", ExerciseIDs: []uint{4}}))

	routines, err := repos.PredefinedRoutines.List()
	require.NoError(t, err)
	require.Len(t, routines, 2)
	assert.Equal(t, 1, routines[0].Number)
	assert.Equal(t, "Pull B", routines[1].Name)
	assert.Equal(t, []uint{4}, routines[1].ExerciseIDs)

	_, found, err := repos.PredefinedRoutines.FindByWeekAndNumber(9, 9)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCompletionRepositorySingleton(t *testing.T) {
	repos := newTestRepositories(t)

	_, found, err := repos.Completion.Load()
	require.NoError(t, err)
	assert.False(t, found)

	first := models.CompletionState{Completed: datatypes.JSONSlice[models.CompletedDay]{{Week: 1, Day: 1}}, UpdatedAt: time.Now()}
	require.NoError(t, repos.Completion.Save(&first))
	second := models.CompletionState{Completed: datatypes.JSONSlice[models.CompletedDay]{{Week: 2, Day: 3}, {Week: 2, Day: 4}}, UpdatedAt: time.Now()}
	require.NoError(t, repos.Completion.Save(&second))

	state, found, err := repos.Completion.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.EqualValues(t, models.CompletionStateID, state.ID)
	assert.Equal(t, []models.CompletedDay{{Week: 2, Day: 3}, {Week: 2, Day: 4}}, []models.CompletedDay(state.Completed))

	var rows int64
	require.NoError(t, repos.Completion.database.Model(&models.CompletionState{}).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}
