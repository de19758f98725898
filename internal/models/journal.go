package models

import "time"

// Journal is a single diary entry. Content holds the rich-text editor
// output as raw HTML; Date is the day the user assigned to the entry,
// which may differ from CreatedAt.
type Journal struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"not null"`
	Date      time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
