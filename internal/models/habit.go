package models

import "time"

type Habit struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	Progress  []HabitProgress `gorm:"foreignKey:HabitID"`
}

// HabitProgress marks one habit on one calendar day. Date is a
// "2006-01-02" day string; at most one record exists per (habit, date).
type HabitProgress struct {
	ID        uint   `gorm:"primaryKey"`
	HabitID   uint   `gorm:"not null;uniqueIndex:uidx_habit_day"`
	Date      string `gorm:"not null;uniqueIndex:uidx_habit_day"`
	Completed bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

func (HabitProgress) TableName() string {
	return "habit_progress"
}
