package db

import (
	"github.com/terraincognita07/liftlog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompletionRepository struct {
	database *gorm.DB
}

func NewCompletionRepository(database *gorm.DB) *CompletionRepository {
	return &CompletionRepository{database: database}
}

func (repo *CompletionRepository) Load() (models.CompletionState, bool, error) {
	state := models.CompletionState{}
	result := repo.database.Where("id = ?", models.CompletionStateID).Limit(1).Find(&state)
	if result.Error != nil {
		return models.CompletionState{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CompletionState{}, false, nil
	}
	return state, true, nil
}

// Save writes the singleton row, creating it on first use.
func (repo *CompletionRepository) Save(state *models.CompletionState) error {
	state.ID = models.CompletionStateID
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(state).Error
}
