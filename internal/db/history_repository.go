package db

import (
	"github.com/terraincognita07/liftlog/internal/models"
	"gorm.io/gorm"
)

type HistoryRepository struct {
	database *gorm.DB
}

func NewHistoryRepository(database *gorm.DB) *HistoryRepository {
	return &HistoryRepository{database: database}
}

func (repo *HistoryRepository) ListByExercise(exerciseID uint) ([]models.HistoryEntry, error) {
	entries := make([]models.HistoryEntry, 0)
	if err := repo.database.
		Where("exercise_id = ?", exerciseID).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// LatestOnDate returns, per exercise, the last entry saved on date.
func (repo *HistoryRepository) LatestOnDate(exerciseIDs []uint, date string) (map[uint]models.HistoryEntry, error) {
	latest := make(map[uint]models.HistoryEntry, len(exerciseIDs))
	if len(exerciseIDs) == 0 {
		return latest, nil
	}

	entries := make([]models.HistoryEntry, 0)
	if err := repo.database.
		Where("exercise_id IN ? AND date = ?", exerciseIDs, date).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	for _, entry := range entries {
		latest[entry.ExerciseID] = entry
	}
	return latest, nil
}

// AppendWithSeriesUpdate stores entry and overwrites the exercise's current
// series with the same string. It reports false when the exercise is gone.
func (repo *HistoryRepository) AppendWithSeriesUpdate(entry *models.HistoryEntry) (bool, error) {
	found := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Exercise{}).Where("id = ?", entry.ExerciseID).Update("series", entry.SeriesString)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		found = true
		return tx.Create(entry).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (repo *HistoryRepository) DeleteByExercise(exerciseID uint) (int64, error) {
	result := repo.database.Where("exercise_id = ?", exerciseID).Delete(&models.HistoryEntry{})
	return result.RowsAffected, result.Error
}

func (repo *HistoryRepository) DeleteByID(id uint) (bool, error) {
	result := repo.database.Where("id = ?", id).Delete(&models.HistoryEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
