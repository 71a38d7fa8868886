package models

import "time"

type HistoryEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ExerciseID   uint      `gorm:"not null;index" json:"exercise_id"`
	Date         string    `gorm:"type:text;not null" json:"date"`
	SeriesString string    `gorm:"not null" json:"series_string"`
	CreatedAt    time.Time `json:"-"`
}

func (HistoryEntry) TableName() string {
	return "history_series"
}
