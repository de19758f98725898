package services

import (
	"testing"
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
)

func TestWordCountSplitsOnWhitespaceRuns(t *testing.T) {
	if count := WordCount("one  two\tthree\nfour "); count != 4 {
		t.Fatalf("expected 4 words, got %d", count)
	}
	if count := WordCount(""); count != 0 {
		t.Fatalf("expected 0 words for empty content, got %d", count)
	}
	// Markup tokens count as words; content is not stripped first.
	if count := WordCount("<p>hello world</p>"); count != 2 {
		t.Fatalf("expected 2 tokens for markup content, got %d", count)
	}
}

func TestBuildJournalStats(t *testing.T) {
	// 2025-03-03 is a Monday.
	journals := []models.Journal{
		makeJournal("2025-03-03", "alpha beta gamma"),
		makeJournal("2025-03-03", "one two"),
		makeJournal("2025-03-05", "single"),
	}

	stats := BuildJournalStats(journals, 30)

	if stats.TotalEntries != 3 {
		t.Fatalf("expected 3 entries, got %d", stats.TotalEntries)
	}
	if stats.AverageWordsPerEntry != 2 {
		t.Fatalf("expected average 2 words per entry, got %d", stats.AverageWordsPerEntry)
	}
	if stats.AverageEntriesPerWeek != 0.7 {
		t.Fatalf("expected 0.7 entries per week, got %v", stats.AverageEntriesPerWeek)
	}
	if stats.EntriesByWeekday[1] != 2 {
		t.Fatalf("expected 2 entries on Monday, got %d", stats.EntriesByWeekday[1])
	}
	if stats.EntriesByWeekday[3] != 1 {
		t.Fatalf("expected 1 entry on Wednesday, got %d", stats.EntriesByWeekday[3])
	}
	if stats.MostActiveDay != 1 {
		t.Fatalf("expected Monday as most active day, got %d", stats.MostActiveDay)
	}
	if len(stats.EntriesByWeekday) != 7 {
		t.Fatalf("expected all 7 weekdays present, got %d", len(stats.EntriesByWeekday))
	}
}

func TestBuildJournalStatsEmpty(t *testing.T) {
	stats := BuildJournalStats(nil, 30)

	if stats.TotalEntries != 0 {
		t.Fatalf("expected 0 entries, got %d", stats.TotalEntries)
	}
	if stats.AverageWordsPerEntry != 0 {
		t.Fatalf("expected 0 average words, got %d", stats.AverageWordsPerEntry)
	}
	if stats.AverageEntriesPerWeek != 0 {
		t.Fatalf("expected 0 entries per week, got %v", stats.AverageEntriesPerWeek)
	}
	// With all counts equal the strict comparison keeps weekday 0.
	if stats.MostActiveDay != 0 {
		t.Fatalf("expected weekday 0 as most active with no entries, got %d", stats.MostActiveDay)
	}
}

func TestBuildJournalStatsMostActiveDayTie(t *testing.T) {
	// Monday and Wednesday tie; the lower weekday index wins.
	journals := []models.Journal{
		makeJournal("2025-03-03", "a"),
		makeJournal("2025-03-05", "b"),
	}

	stats := BuildJournalStats(journals, 30)
	if stats.MostActiveDay != 1 {
		t.Fatalf("expected tie broken toward Monday, got %d", stats.MostActiveDay)
	}
}

func makeJournal(created string, content string) models.Journal {
	day := mustParseDay(created)
	return models.Journal{
		Title:     "entry",
		Content:   content,
		Date:      day,
		CreatedAt: day,
	}
}

func mustParseDay(value string) time.Time {
	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return day
}
