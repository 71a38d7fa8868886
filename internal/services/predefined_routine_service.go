package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/terraincognita07/liftlog/internal/models"
	"gorm.io/datatypes"
)

var (
	ErrPredefinedRoutineNotFound = errors.New("predefined routine not found")
	ErrInvalidCompletedDay       = errors.New("invalid completed day")
	ErrLoadCompletionFailed      = errors.New("load completion state failed")
	ErrSaveCompletionFailed      = errors.New("save completion state failed")
)

type PredefinedRoutineRepository interface {
	List() ([]models.PredefinedRoutine, error)
	FindByWeekAndNumber(week int, number int) (models.PredefinedRoutine, bool, error)
	Upsert(routine *models.PredefinedRoutine) error
}

type RoutineExerciseReader interface {
	ListByIDs(ids []uint) ([]models.Exercise, error)
}

type CompletionRepository interface {
	Load() (models.CompletionState, bool, error)
	Save(state *models.CompletionState) error
}

type PredefinedRoutineView struct {
	ID        uint              `json:"id"`
	Week      int               `json:"week"`
	Number    int               `json:"number"`
	Name      string            `json:"name"`
	Exercises []models.Exercise `json:"exercises"`
}

type PredefinedRoutineService struct {
	routines   PredefinedRoutineRepository
	exercises  RoutineExerciseReader
	completion CompletionRepository
	clock      Clock
}

func NewPredefinedRoutineService(routines PredefinedRoutineRepository, exercises RoutineExerciseReader, completion CompletionRepository, clock Clock) *PredefinedRoutineService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &PredefinedRoutineService{
		routines:   routines,
		exercises:  exercises,
		completion: completion,
		clock:      clock,
	}
}

func (service *PredefinedRoutineService) List() ([]PredefinedRoutineView, error) {
	routines, err := service.routines.List()
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0)
	for _, routine := range routines {
		ids = append(ids, routine.ExerciseIDs...)
	}
	exerciseByID, err := service.loadExercises(ids)
	if err != nil {
		return nil, err
	}

	views := make([]PredefinedRoutineView, 0, len(routines))
	for _, routine := range routines {
		views = append(views, buildRoutineView(routine, exerciseByID))
	}
	return views, nil
}

// GetByWeekAndNumber resolves one routine. Weeks and numbers start at 1, so
// any other pair is simply not found.
func (service *PredefinedRoutineService) GetByWeekAndNumber(week int, number int) (PredefinedRoutineView, error) {
	if week < 1 || number < 1 {
		return PredefinedRoutineView{}, ErrPredefinedRoutineNotFound
	}
	routine, found, err := service.routines.FindByWeekAndNumber(week, number)
	if err != nil {
		return PredefinedRoutineView{}, err
	}
	if !found {
		return PredefinedRoutineView{}, ErrPredefinedRoutineNotFound
	}

	exerciseByID, err := service.loadExercises(routine.ExerciseIDs)
	if err != nil {
		return PredefinedRoutineView{}, err
	}
	return buildRoutineView(routine, exerciseByID), nil
}

func (service *PredefinedRoutineService) CompletionState() ([]models.CompletedDay, error) {
	state, found, err := service.completion.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCompletionFailed, err)
	}
	if !found || len(state.Completed) == 0 {
		return []models.CompletedDay{}, nil
	}
	return []models.CompletedDay(state.Completed), nil
}

// SetCompletionState replaces the whole completed set. Duplicates collapse
// and the result is ordered by week then day.
func (service *PredefinedRoutineService) SetCompletionState(days []models.CompletedDay) ([]models.CompletedDay, error) {
	normalized, err := NormalizeCompletedDays(days)
	if err != nil {
		return nil, err
	}

	state := models.CompletionState{
		Completed: datatypes.JSONSlice[models.CompletedDay](normalized),
		UpdatedAt: service.clock.Now(),
	}
	if err := service.completion.Save(&state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveCompletionFailed, err)
	}
	return normalized, nil
}

func NormalizeCompletedDays(days []models.CompletedDay) ([]models.CompletedDay, error) {
	seen := make(map[models.CompletedDay]struct{}, len(days))
	normalized := make([]models.CompletedDay, 0, len(days))
	for _, day := range days {
		if day.Week < 1 || day.Day < 1 {
			return nil, ErrInvalidCompletedDay
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		normalized = append(normalized, day)
	}
	sort.Slice(normalized, func(i, j int) bool {
		if normalized[i].Week == normalized[j].Week {
			return normalized[i].Day < normalized[j].Day
		}
		return normalized[i].Week < normalized[j].Week
	})
	return normalized, nil
}

func (service *PredefinedRoutineService) loadExercises(ids []uint) (map[uint]models.Exercise, error) {
	exercises, err := service.exercises.ListByIDs(uniqueUints(ids))
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Exercise, len(exercises))
	for _, exercise := range exercises {
		byID[exercise.ID] = exercise
	}
	return byID, nil
}

// buildRoutineView keeps the routine's exercise order and skips ids whose
// exercise was deleted.
func buildRoutineView(routine models.PredefinedRoutine, exerciseByID map[uint]models.Exercise) PredefinedRoutineView {
	exercises := make([]models.Exercise, 0, len(routine.ExerciseIDs))
	for _, id := range routine.ExerciseIDs {
		if exercise, ok := exerciseByID[id]; ok {
			exercises = append(exercises, exercise)
		}
	}
	return PredefinedRoutineView{
		ID:        routine.ID,
		Week:      routine.Week,
		Number:    routine.Number,
		Name:      routine.Name,
		Exercises: exercises,
	}
}

func uniqueUints(values []uint) []uint {
	seen := make(map[uint]struct{}, len(values))
	unique := make([]uint, 0, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}
	return unique
}
