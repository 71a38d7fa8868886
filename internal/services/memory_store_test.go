package services

import (
	"errors"
	"sort"

	"github.com/terraincognita07/liftlog/internal/models"
)

var errStoreDown = errors.New("store down")

// memoryStore backs every repository interface with plain maps.
type memoryStore struct {
	exercises  map[uint]models.Exercise
	entries    map[uint]models.TodayRoutineEntry
	history    map[uint]models.HistoryEntry
	routines   map[[2]int]models.PredefinedRoutine
	completion *models.CompletionState
	nextID     uint
	failWith   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		exercises: map[uint]models.Exercise{},
		entries:   map[uint]models.TodayRoutineEntry{},
		history:   map[uint]models.HistoryEntry{},
		routines:  map[[2]int]models.PredefinedRoutine{},
	}
}

func (store *memoryStore) id() uint {
	store.nextID++
	return store.nextID
}

type memoryExercises struct{ *memoryStore }

func (repo memoryExercises) List() ([]models.Exercise, error) {
	if repo.failWith != nil {
		return nil, repo.failWith
	}
	result := make([]models.Exercise, 0, len(repo.exercises))
	for _, exercise := range repo.exercises {
		result = append(result, exercise)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (repo memoryExercises) ListByIDs(ids []uint) ([]models.Exercise, error) {
	if repo.failWith != nil {
		return nil, repo.failWith
	}
	result := make([]models.Exercise, 0, len(ids))
	for _, id := range ids {
		if exercise, ok := repo.exercises[id]; ok {
			result = append(result, exercise)
		}
	}
	return result, nil
}

func (repo memoryExercises) ListByCodes(codes []string) ([]models.Exercise, error) {
	result := make([]models.Exercise, 0, len(codes))
	for _, exercise := range repo.exercises {
		for _, code := range codes {
			if exercise.Code == code {
				result = append(result, exercise)
				break
			}
		}
	}
	return result, nil
}

func (repo memoryExercises) FindByID(id uint) (models.Exercise, bool, error) {
	if repo.failWith != nil {
		return models.Exercise{}, false, repo.failWith
	}
	exercise, ok := repo.exercises[id]
	return exercise, ok, nil
}

func (repo memoryExercises) CodeExists(code string) (bool, error) {
	if repo.failWith != nil {
		return false, repo.failWith
	}
	for _, exercise := range repo.exercises {
		if exercise.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (repo memoryExercises) Count() (int64, error) {
	return int64(len(repo.exercises)), nil
}

func (repo memoryExercises) Create(exercise *models.Exercise) error {
	if repo.failWith != nil {
		return repo.failWith
	}
	exercise.ID = repo.id()
	repo.exercises[exercise.ID] = *exercise
	return nil
}

func (repo memoryExercises) CreateBatch(exercises []models.Exercise) error {
	for index := range exercises {
		if err := repo.Create(&exercises[index]); err != nil {
			return err
		}
	}
	return nil
}

func (repo memoryExercises) ResetSeries(id uint) (bool, error) {
	exercise, ok := repo.exercises[id]
	if !ok {
		return false, nil
	}
	exercise.Series = exercise.SeriesOriginal
	repo.exercises[id] = exercise
	return true, nil
}

func (repo memoryExercises) DeleteCascade(id uint) (bool, error) {
	if _, ok := repo.exercises[id]; !ok {
		return false, nil
	}
	delete(repo.exercises, id)
	for entryID, entry := range repo.entries {
		if entry.ExerciseID == id {
			delete(repo.entries, entryID)
		}
	}
	for historyID, entry := range repo.history {
		if entry.ExerciseID == id {
			delete(repo.history, historyID)
		}
	}
	return true, nil
}

type memoryEntries struct{ *memoryStore }

func (repo memoryEntries) ListByDate(date string) ([]models.TodayRoutineEntry, error) {
	if repo.failWith != nil {
		return nil, repo.failWith
	}
	result := make([]models.TodayRoutineEntry, 0)
	for _, entry := range repo.entries {
		if entry.Date == date {
			result = append(result, entry)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (repo memoryEntries) FindByID(id uint) (models.TodayRoutineEntry, bool, error) {
	entry, ok := repo.entries[id]
	return entry, ok, nil
}

func (repo memoryEntries) Create(entry *models.TodayRoutineEntry) error {
	entry.ID = repo.id()
	repo.entries[entry.ID] = *entry
	return nil
}

func (repo memoryEntries) UpdateComment(id uint, comment string) (bool, error) {
	entry, ok := repo.entries[id]
	if !ok {
		return false, nil
	}
	entry.Comment = comment
	repo.entries[id] = entry
	return true, nil
}

func (repo memoryEntries) DeleteByID(id uint) (bool, error) {
	if _, ok := repo.entries[id]; !ok {
		return false, nil
	}
	delete(repo.entries, id)
	return true, nil
}

type memoryHistory struct{ *memoryStore }

func (repo memoryHistory) ListByExercise(exerciseID uint) ([]models.HistoryEntry, error) {
	result := make([]models.HistoryEntry, 0)
	for _, entry := range repo.history {
		if entry.ExerciseID == exerciseID {
			result = append(result, entry)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date == result[j].Date {
			return result[i].ID < result[j].ID
		}
		return result[i].Date < result[j].Date
	})
	return result, nil
}

func (repo memoryHistory) LatestOnDate(exerciseIDs []uint, date string) (map[uint]models.HistoryEntry, error) {
	latest := map[uint]models.HistoryEntry{}
	for _, entry := range repo.history {
		if entry.Date != date {
			continue
		}
		for _, id := range exerciseIDs {
			if entry.ExerciseID != id {
				continue
			}
			if current, ok := latest[id]; !ok || entry.ID > current.ID {
				latest[id] = entry
			}
		}
	}
	return latest, nil
}

func (repo memoryHistory) AppendWithSeriesUpdate(entry *models.HistoryEntry) (bool, error) {
	if repo.failWith != nil {
		return false, repo.failWith
	}
	exercise, ok := repo.exercises[entry.ExerciseID]
	if !ok {
		return false, nil
	}
	exercise.Series = entry.SeriesString
	repo.exercises[exercise.ID] = exercise
	entry.ID = repo.id()
	repo.history[entry.ID] = *entry
	return true, nil
}

func (repo memoryHistory) DeleteByExercise(exerciseID uint) (int64, error) {
	var deleted int64
	for id, entry := range repo.history {
		if entry.ExerciseID == exerciseID {
			delete(repo.history, id)
			deleted++
		}
	}
	return deleted, nil
}

func (repo memoryHistory) DeleteByID(id uint) (bool, error) {
	if _, ok := repo.history[id]; !ok {
		return false, nil
	}
	delete(repo.history, id)
	return true, nil
}

type memoryRoutines struct{ *memoryStore }

func (repo memoryRoutines) List() ([]models.PredefinedRoutine, error) {
	result := make([]models.PredefinedRoutine, 0, len(repo.routines))
	for _, routine := range repo.routines {
		result = append(result, routine)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Week == result[j].Week {
			return result[i].Number < result[j].Number
		}
		return result[i].Week < result[j].Week
	})
	return result, nil
}

func (repo memoryRoutines) FindByWeekAndNumber(week int, number int) (models.PredefinedRoutine, bool, error) {
	routine, ok := repo.routines[[2]int{week, number}]
	return routine, ok, nil
}

func (repo memoryRoutines) Upsert(routine *models.PredefinedRoutine) error {
	key := [2]int{routine.Week, routine.Number}
	if existing, ok := repo.routines[key]; ok {
		routine.ID = existing.ID
	} else {
		routine.ID = repo.id()
	}
	repo.routines[key] = *routine
	return nil
}

type memoryCompletion struct{ *memoryStore }

func (repo memoryCompletion) Load() (models.CompletionState, bool, error) {
	if repo.failWith != nil {
		return models.CompletionState{}, false, repo.failWith
	}
	if repo.completion == nil {
		return models.CompletionState{}, false, nil
	}
	return *repo.completion, true, nil
}

func (repo memoryCompletion) Save(state *models.CompletionState) error {
	if repo.failWith != nil {
		return repo.failWith
	}
	state.ID = models.CompletionStateID
	copied := *state
	repo.completion = &copied
	return nil
}
