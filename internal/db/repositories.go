package db

import "gorm.io/gorm"

type Repositories struct {
	Exercises          *ExerciseRepository
	TodayRoutine       *TodayRoutineRepository
	History            *HistoryRepository
	PredefinedRoutines *PredefinedRoutineRepository
	Completion         *CompletionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Exercises:          NewExerciseRepository(database),
		TodayRoutine:       NewTodayRoutineRepository(database),
		History:            NewHistoryRepository(database),
		PredefinedRoutines: NewPredefinedRoutineRepository(database),
		Completion:         NewCompletionRepository(database),
	}
}
