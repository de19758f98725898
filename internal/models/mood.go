package models

import "time"

const (
	MoodAwful   = "awful"
	MoodBad     = "bad"
	MoodNeutral = "neutral"
	MoodGood    = "good"
	MoodGreat   = "great"
)

// MoodLabelsBestFirst fixes the enumeration order used for tie-breaking:
// when two moods are equally common, the one closer to the front wins.
var MoodLabelsBestFirst = []string{MoodGreat, MoodGood, MoodNeutral, MoodBad, MoodAwful}

var moodScores = map[string]int{
	MoodGreat:   4,
	MoodGood:    3,
	MoodNeutral: 2,
	MoodBad:     1,
	MoodAwful:   0,
}

// MoodScore maps a mood label onto the 0-4 ordinal scale (awful=0, great=4).
func MoodScore(mood string) int {
	return moodScores[mood]
}

func IsValidMood(mood string) bool {
	_, ok := moodScores[mood]
	return ok
}

type MoodEntry struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Mood      string `gorm:"not null"`
	Note      string
	Date      time.Time `gorm:"not null"`
	CreatedAt time.Time
}
