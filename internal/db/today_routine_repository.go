package db

import (
	"github.com/terraincognita07/liftlog/internal/models"
	"gorm.io/gorm"
)

type TodayRoutineRepository struct {
	database *gorm.DB
}

func NewTodayRoutineRepository(database *gorm.DB) *TodayRoutineRepository {
	return &TodayRoutineRepository{database: database}
}

func (repo *TodayRoutineRepository) ListByDate(date string) ([]models.TodayRoutineEntry, error) {
	entries := make([]models.TodayRoutineEntry, 0)
	if err := repo.database.Where("date = ?", date).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *TodayRoutineRepository) FindByID(id uint) (models.TodayRoutineEntry, bool, error) {
	entry := models.TodayRoutineEntry{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.TodayRoutineEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TodayRoutineEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *TodayRoutineRepository) Create(entry *models.TodayRoutineEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *TodayRoutineRepository) UpdateComment(id uint, comment string) (bool, error) {
	result := repo.database.Model(&models.TodayRoutineEntry{}).Where("id = ?", id).Update("comment", comment)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *TodayRoutineRepository) DeleteByID(id uint) (bool, error) {
	result := repo.database.Where("id = ?", id).Delete(&models.TodayRoutineEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
