package db

import (
	"github.com/terraincognita07/liftlog/internal/models"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) List() ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.Order("id ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) ListByIDs(ids []uint) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0, len(ids))
	if len(ids) == 0 {
		return exercises, nil
	}
	if err := repo.database.Where("id IN ?", ids).Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) ListByCodes(codes []string) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0, len(codes))
	if len(codes) == 0 {
		return exercises, nil
	}
	if err := repo.database.Where("code IN ?", codes).Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) FindByID(id uint) (models.Exercise, bool, error) {
	exercise := models.Exercise{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&exercise)
	if result.Error != nil {
		return models.Exercise{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Exercise{}, false, nil
	}
	return exercise, true, nil
}

func (repo *ExerciseRepository) CodeExists(code string) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.Exercise{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *ExerciseRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Exercise{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ExerciseRepository) Create(exercise *models.Exercise) error {
	return repo.database.Create(exercise).Error
}

func (repo *ExerciseRepository) CreateBatch(exercises []models.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}
	return repo.database.Create(&exercises).Error
}

// ResetSeries copies series_original back onto series.
func (repo *ExerciseRepository) ResetSeries(id uint) (bool, error) {
	result := repo.database.Model(&models.Exercise{}).
		Where("id = ?", id).
		Update("series", gorm.Expr("series_original"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteCascade removes the exercise together with its routine entries and
// history rows.
func (repo *ExerciseRepository) DeleteCascade(id uint) (bool, error) {
	deleted := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exercise_id = ?", id).Delete(&models.TodayRoutineEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exercise_id = ?", id).Delete(&models.HistoryEntry{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Exercise{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
