package services

import (
	"errors"
	"strings"
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
)

var (
	ErrJournalNotFound     = errors.New("journal not found")
	ErrJournalTitleMissing = errors.New("journal title required")
)

type JournalRepository interface {
	ListByUser(userID uint, limit int) ([]models.Journal, error)
	FindByIDForUser(journalID uint, userID uint) (models.Journal, bool, error)
	Create(journal *models.Journal) error
	Save(journal *models.Journal) error
	DeleteByIDForUser(journalID uint, userID uint) error
}

type JournalService struct {
	journals JournalRepository
}

func NewJournalService(journals JournalRepository) *JournalService {
	return &JournalService{journals: journals}
}

type JournalInput struct {
	Title   string
	Content string
	Date    time.Time
}

func (service *JournalService) List(userID uint, limit int) ([]models.Journal, error) {
	return service.journals.ListByUser(userID, limit)
}

func (service *JournalService) Get(userID uint, journalID uint) (models.Journal, error) {
	journal, found, err := service.journals.FindByIDForUser(journalID, userID)
	if err != nil {
		return models.Journal{}, err
	}
	if !found {
		return models.Journal{}, ErrJournalNotFound
	}
	return journal, nil
}

func (service *JournalService) Create(userID uint, input JournalInput) (models.Journal, error) {
	if strings.TrimSpace(input.Title) == "" {
		return models.Journal{}, ErrJournalTitleMissing
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	journal := models.Journal{
		UserID:  userID,
		Title:   strings.TrimSpace(input.Title),
		Content: input.Content,
		Date:    date,
	}
	if err := service.journals.Create(&journal); err != nil {
		return models.Journal{}, err
	}
	return journal, nil
}

func (service *JournalService) Update(userID uint, journalID uint, input JournalInput) (models.Journal, error) {
	journal, found, err := service.journals.FindByIDForUser(journalID, userID)
	if err != nil {
		return models.Journal{}, err
	}
	if !found {
		return models.Journal{}, ErrJournalNotFound
	}
	if strings.TrimSpace(input.Title) == "" {
		return models.Journal{}, ErrJournalTitleMissing
	}

	journal.Title = strings.TrimSpace(input.Title)
	journal.Content = input.Content
	if !input.Date.IsZero() {
		journal.Date = input.Date
	}
	if err := service.journals.Save(&journal); err != nil {
		return models.Journal{}, err
	}
	return journal, nil
}

func (service *JournalService) Delete(userID uint, journalID uint) error {
	_, found, err := service.journals.FindByIDForUser(journalID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrJournalNotFound
	}
	return service.journals.DeleteByIDForUser(journalID, userID)
}
