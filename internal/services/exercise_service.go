package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/liftlog/internal/models"
)

var (
	ErrMissingExerciseFields = errors.New("missing required fields")
	ErrInvalidExerciseType   = errors.New("invalid exercise type")
	ErrExerciseCodeTaken     = errors.New("exercise code already exists")
	ErrExerciseNotFound      = errors.New("exercise not found")
	ErrCreateExerciseFailed  = errors.New("create exercise failed")
	ErrDeleteExerciseFailed  = errors.New("delete exercise failed")
	ErrResetSeriesFailed     = errors.New("reset series failed")
)

type ExerciseRepository interface {
	List() ([]models.Exercise, error)
	FindByID(id uint) (models.Exercise, bool, error)
	CodeExists(code string) (bool, error)
	Create(exercise *models.Exercise) error
	ResetSeries(id uint) (bool, error)
	DeleteCascade(id uint) (bool, error)
}

type ExerciseInput struct {
	Code        string
	MuscleGroup string
	Name        string
	Series      string
	Type        string
	Description string
	URL         string
}

type ExerciseService struct {
	exercises ExerciseRepository
}

func NewExerciseService(exercises ExerciseRepository) *ExerciseService {
	return &ExerciseService{exercises: exercises}
}

func (service *ExerciseService) List() ([]models.Exercise, error) {
	return service.exercises.List()
}

func (service *ExerciseService) Get(id uint) (models.Exercise, error) {
	exercise, found, err := service.exercises.FindByID(id)
	if err != nil {
		return models.Exercise{}, err
	}
	if !found {
		return models.Exercise{}, ErrExerciseNotFound
	}
	return exercise, nil
}

// Create stores a new exercise exactly as given. Blank checks ignore
// surrounding whitespace; type must match one of the known values verbatim.
// series_original is captured here and never written again.
func (service *ExerciseService) Create(input ExerciseInput) (models.Exercise, error) {
	if isBlank(input.Code) || isBlank(input.MuscleGroup) || isBlank(input.Name) || isBlank(input.Series) || isBlank(input.Type) {
		return models.Exercise{}, ErrMissingExerciseFields
	}
	if !models.IsExerciseType(input.Type) {
		return models.Exercise{}, ErrInvalidExerciseType
	}

	exercise := models.Exercise{
		Code:        input.Code,
		MuscleGroup: input.MuscleGroup,
		Name:        input.Name,
		Series:      input.Series,
		Type:        input.Type,
		Description: input.Description,
		URL:         input.URL,
	}

	taken, err := service.exercises.CodeExists(exercise.Code)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("%w: %v", ErrCreateExerciseFailed, err)
	}
	if taken {
		return models.Exercise{}, ErrExerciseCodeTaken
	}

	exercise.SeriesOriginal = exercise.Series
	if err := service.exercises.Create(&exercise); err != nil {
		return models.Exercise{}, fmt.Errorf("%w: %v", ErrCreateExerciseFailed, err)
	}
	return exercise, nil
}

func (service *ExerciseService) Delete(id uint) error {
	deleted, err := service.exercises.DeleteCascade(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteExerciseFailed, err)
	}
	if !deleted {
		return ErrExerciseNotFound
	}
	return nil
}

func (service *ExerciseService) ResetSeries(id uint) error {
	reset, err := service.exercises.ResetSeries(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResetSeriesFailed, err)
	}
	if !reset {
		return ErrExerciseNotFound
	}
	return nil
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
