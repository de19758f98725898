package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
)

type fakeHabitRepository struct {
	habits   map[uint]*models.Habit
	progress map[string]*models.HabitProgress
	nextID   uint
}

func newFakeHabitRepository() *fakeHabitRepository {
	return &fakeHabitRepository{
		habits:   make(map[uint]*models.Habit),
		progress: make(map[string]*models.HabitProgress),
		nextID:   1,
	}
}

func progressKey(habitID uint, day string) string {
	return fmt.Sprintf("%d/%s", habitID, day)
}

func (fake *fakeHabitRepository) ListByUserWithProgressSince(userID uint, since time.Time) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	for _, habit := range fake.habits {
		if habit.UserID == userID {
			habits = append(habits, *habit)
		}
	}
	return habits, nil
}

func (fake *fakeHabitRepository) FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error) {
	habit, ok := fake.habits[habitID]
	if !ok || habit.UserID != userID {
		return models.Habit{}, false, nil
	}
	return *habit, true, nil
}

func (fake *fakeHabitRepository) Create(habit *models.Habit) error {
	habit.ID = fake.nextID
	fake.nextID++
	stored := *habit
	fake.habits[habit.ID] = &stored
	return nil
}

func (fake *fakeHabitRepository) Save(habit *models.Habit) error {
	stored := *habit
	fake.habits[habit.ID] = &stored
	return nil
}

func (fake *fakeHabitRepository) DeleteByIDForUser(habitID uint, userID uint) error {
	delete(fake.habits, habitID)
	return nil
}

func (fake *fakeHabitRepository) FindProgressByHabitAndDay(habitID uint, day string) (models.HabitProgress, bool, error) {
	progress, ok := fake.progress[progressKey(habitID, day)]
	if !ok {
		return models.HabitProgress{}, false, nil
	}
	return *progress, true, nil
}

func (fake *fakeHabitRepository) CreateProgress(progress *models.HabitProgress) error {
	key := progressKey(progress.HabitID, progress.Date)
	if _, exists := fake.progress[key]; exists {
		return errors.New("unique constraint violated")
	}
	progress.ID = fake.nextID
	fake.nextID++
	stored := *progress
	fake.progress[key] = &stored
	return nil
}

func (fake *fakeHabitRepository) SaveProgress(progress *models.HabitProgress) error {
	stored := *progress
	fake.progress[progressKey(progress.HabitID, progress.Date)] = &stored
	return nil
}

func TestHabitServiceMarkProgressUpserts(t *testing.T) {
	repo := newFakeHabitRepository()
	service := NewHabitService(repo)

	habit, err := service.Create(3, "stretch")
	if err != nil {
		t.Fatalf("create habit failed: %v", err)
	}

	first, err := service.MarkProgress(3, habit.ID, "2025-03-10", true)
	if err != nil {
		t.Fatalf("mark progress failed: %v", err)
	}
	if !first.Completed {
		t.Fatal("expected progress marked completed")
	}

	// Marking the same day again updates the existing record instead of
	// inserting a duplicate.
	second, err := service.MarkProgress(3, habit.ID, "2025-03-10", false)
	if err != nil {
		t.Fatalf("second mark failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same record updated, got id %d then %d", first.ID, second.ID)
	}
	if second.Completed {
		t.Fatal("expected progress unchecked after second mark")
	}
	if len(repo.progress) != 1 {
		t.Fatalf("expected a single record per habit and day, got %d", len(repo.progress))
	}
}

func TestHabitServiceMarkProgressValidation(t *testing.T) {
	repo := newFakeHabitRepository()
	service := NewHabitService(repo)

	habit, err := service.Create(3, "stretch")
	if err != nil {
		t.Fatalf("create habit failed: %v", err)
	}

	if _, err := service.MarkProgress(3, habit.ID, "10-03-2025", true); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
	if _, err := service.MarkProgress(3, 999, "2025-03-10", true); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
	// Another user cannot mark someone else's habit.
	if _, err := service.MarkProgress(4, habit.ID, "2025-03-10", true); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected foreign habit to be invisible, got %v", err)
	}
}

func TestHabitServiceCreateRequiresName(t *testing.T) {
	service := NewHabitService(newFakeHabitRepository())
	if _, err := service.Create(1, "   "); !errors.Is(err, ErrHabitNameMissing) {
		t.Fatalf("expected ErrHabitNameMissing, got %v", err)
	}
}
