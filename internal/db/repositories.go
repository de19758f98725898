package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Journals *JournalRepository
	Habits   *HabitRepository
	Moods    *MoodRepository
	Goals    *GoalRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Journals: NewJournalRepository(database),
		Habits:   NewHabitRepository(database),
		Moods:    NewMoodRepository(database),
		Goals:    NewGoalRepository(database),
	}
}
