package readiness

import "time"

// Zone is the training recommendation bucket for a score
type Zone string

const (
	ZoneTrainHard     Zone = "train_hard"
	ZoneTrainModerate Zone = "train_moderate"
	ZoneRecovery      Zone = "recovery"
)

// Color is the presentation token for a zone
type Color string

const (
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

// Assessment is the derived readiness of a single check-in
type Assessment struct {
	CheckInID      string    `json:"check_in_id"`
	Date           time.Time `json:"date"`
	Score          int       `json:"score"`
	Zone           Zone      `json:"zone"`
	Recommendation string    `json:"recommendation"`
	Color          Color     `json:"color"`
}
