package checkin

import (
	"time"

	"github.com/google/uuid"
)

// Metrics are the five self-assessed inputs of a daily check-in.
// The scales are semantic only; nothing here rejects out-of-range values.
type Metrics struct {
	SleepQuality   int `json:"sleepQuality" validate:"min=1,max=5"`
	StressLevel    int `json:"stressLevel" validate:"min=1,max=5"`
	MuscleSoreness int `json:"muscleSoreness" validate:"min=1,max=5"`
	Motivation     int `json:"motivation" validate:"min=1,max=5"`
	TimeAvailable  int `json:"timeAvailable" validate:"min=0,max=120"` // minutes
}

// CheckIn is one day's self-assessment. ID is used for identity only,
// never for ordering or same-day replacement.
type CheckIn struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Metrics
}

// New creates a check-in with a fresh ID. A zero date means now.
func New(date time.Time, m Metrics) CheckIn {
	if date.IsZero() {
		date = time.Now()
	}
	return CheckIn{
		ID:      uuid.NewString(),
		Date:    date,
		Metrics: m,
	}
}

// SameDay reports whether a and b fall on the same calendar day in loc.
// A nil loc means time.Local.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
