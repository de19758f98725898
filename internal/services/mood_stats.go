package services

import (
	"sort"
	"time"

	"github.com/wellspringhq/wellspring/internal/models"
)

const moodTrendLimit = 30

type MoodTrendPoint struct {
	Date  time.Time `json:"date"`
	Mood  string    `json:"mood"`
	Score int       `json:"score"`
}

type MoodStats struct {
	TotalEntries   int              `json:"total_entries"`
	MoodCounts     map[string]int   `json:"mood_counts"`
	AverageScore   *float64         `json:"average_score"`
	AverageMood    string           `json:"average_mood,omitempty"`
	MostCommonMood string           `json:"most_common_mood"`
	Trend          []MoodTrendPoint `json:"trend"`
}

// BuildMoodStats works on the 0-4 scale (awful=0 ... great=4). With no
// entries AverageScore stays nil and AverageMood empty: no data is not
// the same as the worst mood.
func BuildMoodStats(moods []models.MoodEntry) MoodStats {
	stats := MoodStats{
		MoodCounts: make(map[string]int, len(models.MoodLabelsBestFirst)),
		Trend:      make([]MoodTrendPoint, 0, len(moods)),
	}
	for _, label := range models.MoodLabelsBestFirst {
		stats.MoodCounts[label] = 0
	}

	totalScore := 0
	for _, entry := range moods {
		stats.MoodCounts[entry.Mood]++
		totalScore += models.MoodScore(entry.Mood)
		stats.Trend = append(stats.Trend, MoodTrendPoint{
			Date:  entry.Date,
			Mood:  entry.Mood,
			Score: models.MoodScore(entry.Mood),
		})
	}

	stats.TotalEntries = len(moods)
	if stats.TotalEntries > 0 {
		average := roundTwoDecimals(float64(totalScore) / float64(stats.TotalEntries))
		stats.AverageScore = &average
		stats.AverageMood = moodLabelForScore(average)
	}

	mostCommon := models.MoodLabelsBestFirst[0]
	for _, label := range models.MoodLabelsBestFirst[1:] {
		if stats.MoodCounts[label] > stats.MoodCounts[mostCommon] {
			mostCommon = label
		}
	}
	stats.MostCommonMood = mostCommon

	sort.SliceStable(stats.Trend, func(i, j int) bool {
		return stats.Trend[i].Date.Before(stats.Trend[j].Date)
	})
	if len(stats.Trend) > moodTrendLimit {
		stats.Trend = stats.Trend[len(stats.Trend)-moodTrendLimit:]
	}

	return stats
}

func moodLabelForScore(score float64) string {
	switch {
	case score >= 3.5:
		return models.MoodGreat
	case score >= 2.5:
		return models.MoodGood
	case score >= 1.5:
		return models.MoodNeutral
	case score >= 0.5:
		return models.MoodBad
	default:
		return models.MoodAwful
	}
}
