package models

const (
	ExerciseTypeFixedSeries      = "fixed_series"
	ExerciseTypeTotalRepetitions = "total_repetitions"
)

type Exercise struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Code           string `gorm:"uniqueIndex;not null" json:"code"`
	MuscleGroup    string `gorm:"not null" json:"muscle_group"`
	Name           string `gorm:"not null" json:"name"`
	Series         string `gorm:"not null" json:"series"`
	Type           string `gorm:"not null" json:"type"`
	SeriesOriginal string `gorm:"not null" json:"series_original"`
	Description    string `gorm:"not null" json:"description"`
	URL            string `gorm:"column:url;not null" json:"url"`
}

func IsExerciseType(value string) bool {
	return value == ExerciseTypeFixedSeries || value == ExerciseTypeTotalRepetitions
}
