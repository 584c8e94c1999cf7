// Package model contains domain models passed between layers.
package model

import (
	"math"
	"time"
)

// Record represents one logged observation: a student's test result
// together with the teaching styles used for the session.
type Record struct {
	Date         time.Time // session date, informational only
	StudentName  string    // free text, trimmed
	Department   string    // department label; unknown values pass through
	Score        float64   // test score, expected [0, 100]; Missing() when absent
	StudyMinutes float64   // study time in minutes, expected >= 0; Missing() when absent
	StyleTags    TagSet    // parsed style tags, no empty or duplicate entries
}

// Missing returns the marker value for an absent or malformed numeric field.
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether v carries the missing marker.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// HasScore reports whether the record carries a usable score.
func (r Record) HasScore() bool {
	return !IsMissing(r.Score)
}

// HasStudyMinutes reports whether the record carries a usable study time.
func (r Record) HasStudyMinutes() bool {
	return !IsMissing(r.StudyMinutes)
}
