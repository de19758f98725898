package services

import (
	"strings"

	"github.com/wellspringhq/wellspring/internal/models"
)

type JournalStats struct {
	TotalEntries          int         `json:"total_entries"`
	AverageWordsPerEntry  int         `json:"average_words_per_entry"`
	AverageEntriesPerWeek float64     `json:"average_entries_per_week"`
	EntriesByWeekday      map[int]int `json:"entries_by_weekday"`
	MostActiveDay         int         `json:"most_active_day"`
}

// WordCount splits on whitespace runs without stripping markup, so HTML
// tags from the rich-text editor count as words. Kept that way on purpose:
// stripping tags would change reported averages for existing entries.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

func BuildJournalStats(journals []models.Journal, windowDays int) JournalStats {
	stats := JournalStats{
		EntriesByWeekday: make(map[int]int, 7),
	}
	for weekday := 0; weekday < 7; weekday++ {
		stats.EntriesByWeekday[weekday] = 0
	}

	totalWords := 0
	for _, journal := range journals {
		weekday := int(journal.CreatedAt.Weekday())
		stats.EntriesByWeekday[weekday]++
		totalWords += WordCount(journal.Content)
	}

	stats.TotalEntries = len(journals)
	if stats.TotalEntries > 0 {
		stats.AverageWordsPerEntry = roundToInt(float64(totalWords) / float64(stats.TotalEntries))
		if windowDays > 0 {
			stats.AverageEntriesPerWeek = roundOneDecimal(float64(stats.TotalEntries) / (float64(windowDays) / 7))
		}
	}

	// Strict greater-than keeps the lowest weekday on ties, including the
	// all-zero case where Sunday (0) stays the answer.
	mostActive := 0
	for weekday := 1; weekday < 7; weekday++ {
		if stats.EntriesByWeekday[weekday] > stats.EntriesByWeekday[mostActive] {
			mostActive = weekday
		}
	}
	stats.MostActiveDay = mostActive

	return stats
}
