package services

import (
	"errors"
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
)

var (
	ErrMoodEntryNotFound = errors.New("mood entry not found")
	ErrInvalidMood       = errors.New("invalid mood label")
)

type MoodRepository interface {
	ListByUserSince(userID uint, since time.Time) ([]models.MoodEntry, error)
	FindByIDForUser(entryID uint, userID uint) (models.MoodEntry, bool, error)
	Create(entry *models.MoodEntry) error
	Save(entry *models.MoodEntry) error
	DeleteByIDForUser(entryID uint, userID uint) error
}

// MoodService validates mood labels at the boundary so the aggregators
// never see a label outside the five-value set.
type MoodService struct {
	moods MoodRepository
}

func NewMoodService(moods MoodRepository) *MoodService {
	return &MoodService{moods: moods}
}

type MoodInput struct {
	Mood string
	Note string
	Date time.Time
}

func (service *MoodService) ListSince(userID uint, since time.Time) ([]models.MoodEntry, error) {
	return service.moods.ListByUserSince(userID, since)
}

func (service *MoodService) Create(userID uint, input MoodInput) (models.MoodEntry, error) {
	if !models.IsValidMood(input.Mood) {
		return models.MoodEntry{}, ErrInvalidMood
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	entry := models.MoodEntry{
		UserID: userID,
		Mood:   input.Mood,
		Note:   input.Note,
		Date:   date,
	}
	if err := service.moods.Create(&entry); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

func (service *MoodService) Update(userID uint, entryID uint, input MoodInput) (models.MoodEntry, error) {
	if !models.IsValidMood(input.Mood) {
		return models.MoodEntry{}, ErrInvalidMood
	}

	entry, found, err := service.moods.FindByIDForUser(entryID, userID)
	if err != nil {
		return models.MoodEntry{}, err
	}
	if !found {
		return models.MoodEntry{}, ErrMoodEntryNotFound
	}

	entry.Mood = input.Mood
	entry.Note = input.Note
	if !input.Date.IsZero() {
		entry.Date = input.Date
	}
	if err := service.moods.Save(&entry); err != nil {
		return models.MoodEntry{}, err
	}
	return entry, nil
}

func (service *MoodService) Delete(userID uint, entryID uint) error {
	_, found, err := service.moods.FindByIDForUser(entryID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrMoodEntryNotFound
	}
	return service.moods.DeleteByIDForUser(entryID, userID)
}
