package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/liftlog/internal/models"
)

var (
	ErrHistoryEntryNotFound = errors.New("history entry not found")
	ErrDeleteHistoryFailed  = errors.New("delete history failed")
	ErrListHistoryFailed    = errors.New("list history failed")
)

type HistoryRepository interface {
	ListByExercise(exerciseID uint) ([]models.HistoryEntry, error)
	DeleteByExercise(exerciseID uint) (int64, error)
	DeleteByID(id uint) (bool, error)
}

type HistoryService struct {
	history HistoryRepository
}

func NewHistoryService(history HistoryRepository) *HistoryService {
	return &HistoryService{history: history}
}

// ListForExercise returns the exercise's snapshots, oldest date first.
func (service *HistoryService) ListForExercise(exerciseID uint) ([]models.HistoryEntry, error) {
	entries, err := service.history.ListByExercise(exerciseID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListHistoryFailed, err)
	}
	return entries, nil
}

func (service *HistoryService) DeleteAllForExercise(exerciseID uint) (int64, error) {
	deleted, err := service.history.DeleteByExercise(exerciseID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDeleteHistoryFailed, err)
	}
	return deleted, nil
}

func (service *HistoryService) DeleteEntry(entryID uint) error {
	deleted, err := service.history.DeleteByID(entryID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteHistoryFailed, err)
	}
	if !deleted {
		return ErrHistoryEntryNotFound
	}
	return nil
}
