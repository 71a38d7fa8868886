package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/terraincognita07/liftlog/internal/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidSeedFile     = errors.New("invalid seed file")
	ErrUnknownExerciseCode = errors.New("unknown exercise code")
	ErrSeedExercisesFailed = errors.New("seed exercises failed")
	ErrSeedRoutinesFailed  = errors.New("seed routines failed")
)

type SeedExerciseRepository interface {
	Count() (int64, error)
	CreateBatch(exercises []models.Exercise) error
	ListByCodes(codes []string) ([]models.Exercise, error)
}

type SeedRoutineRepository interface {
	Upsert(routine *models.PredefinedRoutine) error
}

type exerciseSeedFile struct {
	Exercises []struct {
		Code        string `yaml:"code"`
		MuscleGroup string `yaml:"muscle_group"`
		Name        string `yaml:"name"`
		Series      string `yaml:"series"`
		Type        string `yaml:"type"`
		Description string `yaml:"description"`
		URL         string `yaml:"url"`
	} `yaml:"exercises"`
}

// routineSeedFile references exercises by code so the file stays valid
// across databases with different ids.
type routineSeedFile struct {
	Routines []struct {
		Week      int      `yaml:"week"`
		Number    int      `yaml:"number"`
		Name      string   `yaml:"name"`
		Exercises []string `yaml:"exercises"`
	} `yaml:"routines"`
}

type Seeder struct {
	exercises SeedExerciseRepository
	routines  SeedRoutineRepository
}

func NewSeeder(exercises SeedExerciseRepository, routines SeedRoutineRepository) *Seeder {
	return &Seeder{
		exercises: exercises,
		routines:  routines,
	}
}

// SeedExercises inserts the catalog from raw YAML only when no exercise exists
// yet. It returns how many rows were written.
func (seeder *Seeder) SeedExercises(raw []byte) (int, error) {
	count, err := seeder.exercises.Count()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSeedExercisesFailed, err)
	}
	if count > 0 {
		return 0, nil
	}

	parsed := exerciseSeedFile{}
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSeedFile, err)
	}

	records := make([]models.Exercise, 0, len(parsed.Exercises))
	for index, item := range parsed.Exercises {
		record := models.Exercise{
			Code:        strings.TrimSpace(item.Code),
			MuscleGroup: strings.TrimSpace(item.MuscleGroup),
			Name:        strings.TrimSpace(item.Name),
			Series:      item.Series,
			Type:        strings.TrimSpace(item.Type),
			Description: strings.TrimSpace(item.Description),
			URL:         strings.TrimSpace(item.URL),
		}
		if record.Code == "" || record.MuscleGroup == "" || record.Name == "" || strings.TrimSpace(record.Series) == "" {
			return 0, fmt.Errorf("%w: exercise #%d is missing required fields", ErrInvalidSeedFile, index+1)
		}
		if !models.IsExerciseType(record.Type) {
			return 0, fmt.Errorf("%w: exercise %s has type %q", ErrInvalidSeedFile, record.Code, record.Type)
		}
		record.SeriesOriginal = record.Series
		records = append(records, record)
	}

	if err := seeder.exercises.CreateBatch(records); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSeedExercisesFailed, err)
	}
	return len(records), nil
}

// SeedRoutines upserts every routine described in raw YAML. All exercise codes
// must already exist.
func (seeder *Seeder) SeedRoutines(raw []byte) (int, error) {
	parsed := routineSeedFile{}
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSeedFile, err)
	}

	codes := make([]string, 0)
	for _, routine := range parsed.Routines {
		for _, code := range routine.Exercises {
			codes = append(codes, strings.TrimSpace(code))
		}
	}
	known, err := seeder.exercises.ListByCodes(codes)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSeedRoutinesFailed, err)
	}
	idByCode := make(map[string]uint, len(known))
	for _, exercise := range known {
		idByCode[exercise.Code] = exercise.ID
	}

	missing := make([]string, 0)
	records := make([]models.PredefinedRoutine, 0, len(parsed.Routines))
	for _, routine := range parsed.Routines {
		if routine.Week < 1 || routine.Number < 1 {
			return 0, fmt.Errorf("%w: routine week %d number %d", ErrInvalidSeedFile, routine.Week, routine.Number)
		}
		ids := make([]uint, 0, len(routine.Exercises))
		for _, code := range routine.Exercises {
			id, ok := idByCode[strings.TrimSpace(code)]
			if !ok {
				missing = append(missing, strings.TrimSpace(code))
				continue
			}
			ids = append(ids, id)
		}
		records = append(records, models.PredefinedRoutine{
			Week:        routine.Week,
			Number:      routine.Number,
			Name:        strings.TrimSpace(routine.Name),
			ExerciseIDs: ids,
		})
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return 0, fmt.Errorf("%w: %s", ErrUnknownExerciseCode, strings.Join(missing, ", "))
	}

	for index := range records {
		if err := seeder.routines.Upsert(&records[index]); err != nil {
			return index, fmt.Errorf("%w: %v", ErrSeedRoutinesFailed, err)
		}
	}
	return len(records), nil
}
