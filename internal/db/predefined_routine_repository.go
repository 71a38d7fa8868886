package db

import (
	"github.com/terraincognita07/liftlog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PredefinedRoutineRepository struct {
	database *gorm.DB
}

func NewPredefinedRoutineRepository(database *gorm.DB) *PredefinedRoutineRepository {
	return &PredefinedRoutineRepository{database: database}
}

func (repo *PredefinedRoutineRepository) List() ([]models.PredefinedRoutine, error) {
	routines := make([]models.PredefinedRoutine, 0)
	if err := repo.database.Order("week ASC, number ASC").Find(&routines).Error; err != nil {
		return nil, err
	}
	return routines, nil
}

func (repo *PredefinedRoutineRepository) FindByWeekAndNumber(week int, number int) (models.PredefinedRoutine, bool, error) {
	routine := models.PredefinedRoutine{}
	result := repo.database.Where("week = ? AND number = ?", week, number).Limit(1).Find(&routine)
	if result.Error != nil {
		return models.PredefinedRoutine{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PredefinedRoutine{}, false, nil
	}
	return routine, true, nil
}

// Upsert replaces the routine stored under the same (week, number) pair.
func (repo *PredefinedRoutineRepository) Upsert(routine *models.PredefinedRoutine) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "week"}, {Name: "number"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "exercise_ids"}),
	}).Create(routine).Error
}
