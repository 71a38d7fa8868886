package models

// TodayRoutineEntry marks an exercise as scheduled for one business day.
type TodayRoutineEntry struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ExerciseID uint   `gorm:"not null;index" json:"exercise_id"`
	Date       string `gorm:"type:text;not null;index" json:"date"`
	Comment    string `gorm:"not null" json:"comment"`
}

func (TodayRoutineEntry) TableName() string {
	return "today_routine"
}
