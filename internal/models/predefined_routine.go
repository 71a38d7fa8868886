package models

import (
	"time"

	"gorm.io/datatypes"
)

type PredefinedRoutine struct {
	ID          uint   `gorm:"primaryKey"`
	Week        int    `gorm:"not null;uniqueIndex:uidx_predefined_routines_week_number"`
	Number      int    `gorm:"not null;uniqueIndex:uidx_predefined_routines_week_number"`
	Name        string `gorm:"not null"`
	ExerciseIDs []uint `gorm:"column:exercise_ids;serializer:json"`
}

// CompletedDay is one {week, day} pair ticked off in the predefined plan.
type CompletedDay struct {
	Week int `json:"week"`
	Day  int `json:"day"`
}

const CompletionStateID = 1

// CompletionState is a single global row; there is no per-user keying.
type CompletionState struct {
	ID        uint                              `gorm:"primaryKey"`
	Completed datatypes.JSONSlice[CompletedDay] `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (CompletionState) TableName() string {
	return "routine_completion"
}
