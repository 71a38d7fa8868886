package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/liftlog/internal/models"
)

var (
	ErrMissingExerciseID        = errors.New("missing exercise id")
	ErrMissingSeries            = errors.New("missing series")
	ErrRoutineEntryNotFound     = errors.New("routine entry not found")
	ErrAddRoutineEntryFailed    = errors.New("add routine entry failed")
	ErrSaveSeriesFailed         = errors.New("save series failed")
	ErrUpdateCommentFailed      = errors.New("update comment failed")
	ErrRemoveRoutineEntryFailed = errors.New("remove routine entry failed")
)

type TodayRoutineRepository interface {
	ListByDate(date string) ([]models.TodayRoutineEntry, error)
	FindByID(id uint) (models.TodayRoutineEntry, bool, error)
	Create(entry *models.TodayRoutineEntry) error
	UpdateComment(id uint, comment string) (bool, error)
	DeleteByID(id uint) (bool, error)
}

type TodayExerciseReader interface {
	FindByID(id uint) (models.Exercise, bool, error)
	ListByIDs(ids []uint) ([]models.Exercise, error)
}

type TodayHistoryRepository interface {
	LatestOnDate(exerciseIDs []uint, date string) (map[uint]models.HistoryEntry, error)
	AppendWithSeriesUpdate(entry *models.HistoryEntry) (bool, error)
}

// TodayRoutineItem is one routine entry joined with its exercise. The
// historial_series and comentario keys are what the frontend reads.
type TodayRoutineItem struct {
	RoutineID uint `json:"routine_id"`
	models.Exercise
	Date            string   `json:"date"`
	HistorialSeries []string `json:"historial_series"`
	Comentario      string   `json:"comentario"`
}

type TodayRoutineService struct {
	entries   TodayRoutineRepository
	exercises TodayExerciseReader
	history   TodayHistoryRepository
	clock     Clock
}

func NewTodayRoutineService(entries TodayRoutineRepository, exercises TodayExerciseReader, history TodayHistoryRepository, clock Clock) *TodayRoutineService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TodayRoutineService{
		entries:   entries,
		exercises: exercises,
		history:   history,
		clock:     clock,
	}
}

func (service *TodayRoutineService) Today() string {
	return BusinessDay(service.clock.Now())
}

func (service *TodayRoutineService) ListToday() ([]TodayRoutineItem, error) {
	today := service.Today()
	entries, err := service.entries.ListByDate(today)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []TodayRoutineItem{}, nil
	}

	exerciseIDs := make([]uint, 0, len(entries))
	for _, entry := range entries {
		exerciseIDs = append(exerciseIDs, entry.ExerciseID)
	}
	exerciseIDs = uniqueUints(exerciseIDs)
	exercises, err := service.exercises.ListByIDs(exerciseIDs)
	if err != nil {
		return nil, err
	}
	exerciseByID := make(map[uint]models.Exercise, len(exercises))
	for _, exercise := range exercises {
		exerciseByID[exercise.ID] = exercise
	}

	latest, err := service.history.LatestOnDate(exerciseIDs, today)
	if err != nil {
		return nil, err
	}

	items := make([]TodayRoutineItem, 0, len(entries))
	for _, entry := range entries {
		exercise, ok := exerciseByID[entry.ExerciseID]
		if !ok {
			continue
		}
		lines := []string{}
		if snapshot, ok := latest[entry.ExerciseID]; ok {
			lines = SplitSeriesLines(snapshot.SeriesString)
		}
		items = append(items, TodayRoutineItem{
			RoutineID:       entry.ID,
			Exercise:        exercise,
			Date:            entry.Date,
			HistorialSeries: lines,
			Comentario:      entry.Comment,
		})
	}
	return items, nil
}

func (service *TodayRoutineService) Add(exerciseID uint) (models.TodayRoutineEntry, error) {
	if exerciseID == 0 {
		return models.TodayRoutineEntry{}, ErrMissingExerciseID
	}
	_, found, err := service.exercises.FindByID(exerciseID)
	if err != nil {
		return models.TodayRoutineEntry{}, fmt.Errorf("%w: %v", ErrAddRoutineEntryFailed, err)
	}
	if !found {
		return models.TodayRoutineEntry{}, ErrExerciseNotFound
	}

	entry := models.TodayRoutineEntry{
		ExerciseID: exerciseID,
		Date:       service.Today(),
		Comment:    "",
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.TodayRoutineEntry{}, fmt.Errorf("%w: %v", ErrAddRoutineEntryFailed, err)
	}
	return entry, nil
}

func (service *TodayRoutineService) Remove(entryID uint) error {
	deleted, err := service.entries.DeleteByID(entryID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoveRoutineEntryFailed, err)
	}
	if !deleted {
		return ErrRoutineEntryNotFound
	}
	return nil
}

func (service *TodayRoutineService) SetComment(entryID uint, comment string) error {
	updated, err := service.entries.UpdateComment(entryID, comment)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpdateCommentFailed, err)
	}
	if !updated {
		return ErrRoutineEntryNotFound
	}
	return nil
}

// SaveSeries records the sets performed for a routine entry: the exercise's
// current series is replaced and a history snapshot is appended. An empty
// date means today.
func (service *TodayRoutineService) SaveSeries(entryID uint, series string, date string) (models.HistoryEntry, error) {
	if strings.TrimSpace(series) == "" {
		return models.HistoryEntry{}, ErrMissingSeries
	}

	day := service.Today()
	if strings.TrimSpace(date) != "" {
		parsed, err := ParseBusinessDay(date)
		if err != nil {
			return models.HistoryEntry{}, err
		}
		day = parsed
	}

	entry, found, err := service.entries.FindByID(entryID)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %v", ErrSaveSeriesFailed, err)
	}
	if !found {
		return models.HistoryEntry{}, ErrRoutineEntryNotFound
	}

	snapshot := models.HistoryEntry{
		ExerciseID:   entry.ExerciseID,
		Date:         day,
		SeriesString: series,
	}
	stored, err := service.history.AppendWithSeriesUpdate(&snapshot)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %v", ErrSaveSeriesFailed, err)
	}
	if !stored {
		return models.HistoryEntry{}, ErrExerciseNotFound
	}
	return snapshot, nil
}
