package readiness

import (
	"math"
	"math/big"
	"slices"

	"github.com/rpggio/readycheck/internal/domain/checkin"
)

const (
	baseScore    = 100
	metricWeight = 10
	minScore     = 0
	maxScore     = 100

	trainHardFloor     = 80
	trainModerateFloor = 50

	// Metrics at or below this magnitude cannot overflow int when weighted
	// and summed.
	exactBound = math.MaxInt / (4*metricWeight + 1)
)

// Score returns the readiness score in [0, 100]. TimeAvailable does not
// contribute. Any int inputs are accepted; the weighted sum is exact before
// clamping.
func Score(m checkin.Metrics) int {
	if !withinExactBound(m) {
		return bigScore(m)
	}
	score := baseScore
	score -= m.StressLevel * metricWeight
	score -= m.MuscleSoreness * metricWeight
	score += m.SleepQuality * metricWeight
	score += m.Motivation * metricWeight
	return clamp(score)
}

func withinExactBound(m checkin.Metrics) bool {
	for _, v := range []int{m.SleepQuality, m.StressLevel, m.MuscleSoreness, m.Motivation} {
		if v > exactBound || v < -exactBound {
			return false
		}
	}
	return true
}

func bigScore(m checkin.Metrics) int {
	weight := big.NewInt(metricWeight)
	term := func(v int) *big.Int {
		return new(big.Int).Mul(big.NewInt(int64(v)), weight)
	}

	score := big.NewInt(baseScore)
	score.Sub(score, term(m.StressLevel))
	score.Sub(score, term(m.MuscleSoreness))
	score.Add(score, term(m.SleepQuality))
	score.Add(score, term(m.Motivation))

	switch {
	case score.Cmp(big.NewInt(minScore)) < 0:
		return minScore
	case score.Cmp(big.NewInt(maxScore)) > 0:
		return maxScore
	default:
		return int(score.Int64())
	}
}

func clamp(score int) int {
	return min(max(score, minScore), maxScore)
}

// ZoneFor buckets a score.
func ZoneFor(score int) Zone {
	switch {
	case score >= trainHardFloor:
		return ZoneTrainHard
	case score >= trainModerateFloor:
		return ZoneTrainModerate
	default:
		return ZoneRecovery
	}
}

// Recommendation returns the display text for a zone.
func Recommendation(z Zone) string {
	switch z {
	case ZoneTrainHard:
		return "Train hard"
	case ZoneTrainModerate:
		return "Train moderate"
	default:
		return "Focus on recovery"
	}
}

// ColorFor returns the presentation color for a zone.
func ColorFor(z Zone) Color {
	switch z {
	case ZoneTrainHard:
		return ColorGreen
	case ZoneTrainModerate:
		return ColorOrange
	default:
		return ColorRed
	}
}

// Assess scores a check-in and resolves its zone, text and color.
func Assess(rec checkin.CheckIn) Assessment {
	score := Score(rec.Metrics)
	zone := ZoneFor(score)
	return Assessment{
		CheckInID:      rec.ID,
		Date:           rec.Date,
		Score:          score,
		Zone:           zone,
		Recommendation: Recommendation(zone),
		Color:          ColorFor(zone),
	}
}

// Trend assesses a history and returns it oldest first, the order a chart
// plots it in. The input slice is not modified.
func Trend(recs []checkin.CheckIn) []Assessment {
	points := make([]Assessment, 0, len(recs))
	for _, rec := range recs {
		points = append(points, Assess(rec))
	}
	slices.SortStableFunc(points, func(a, b Assessment) int {
		return a.Date.Compare(b.Date)
	})
	return points
}
