package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/readycheck/internal/domain/checkin"
	"github.com/rpggio/readycheck/internal/domain/readiness"
)

var errInvalidDate = errors.New("invalid date")

// RecordCheckInInput is the input of record_check_in.
type RecordCheckInInput struct {
	SleepQuality   int    `json:"sleep_quality" jsonschema:"sleep quality from 1 (poor) to 5 (great)"`
	StressLevel    int    `json:"stress_level" jsonschema:"stress level from 1 (calm) to 5 (very stressed)"`
	MuscleSoreness int    `json:"muscle_soreness" jsonschema:"muscle soreness from 1 (none) to 5 (severe)"`
	Motivation     int    `json:"motivation" jsonschema:"motivation from 1 (low) to 5 (high)"`
	TimeAvailable  int    `json:"time_available" jsonschema:"minutes available to train, 0 to 120"`
	Date           string `json:"date,omitempty" jsonschema:"optional RFC 3339 timestamp; defaults to now"`
}

// CountInput limits a history query.
type CountInput struct {
	Count *int `json:"count,omitempty" jsonschema:"number of check-ins to return (default 7)"`
}

// EmptyInput is the input of tools without arguments.
type EmptyInput struct{}

// CheckInView is a check-in with its readiness assessment.
type CheckInView struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	SleepQuality   int    `json:"sleep_quality"`
	StressLevel    int    `json:"stress_level"`
	MuscleSoreness int    `json:"muscle_soreness"`
	Motivation     int    `json:"motivation"`
	TimeAvailable  int    `json:"time_available"`
	Score          int    `json:"score"`
	Zone           string `json:"zone"`
	Recommendation string `json:"recommendation"`
	Color          string `json:"color"`
}

// TrendPoint is one chart point of readiness_trend.
type TrendPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
	Zone  string `json:"zone"`
}

type RecordCheckInOutput struct {
	CheckIn CheckInView `json:"check_in"`
}

type RecentCheckInsOutput struct {
	CheckIns []CheckInView `json:"check_ins"`
}

type HasCheckInTodayOutput struct {
	HasCheckIn bool `json:"has_check_in"`
}

type TrendOutput struct {
	Points []TrendPoint `json:"points"`
}

type ClearOutput struct {
	Cleared bool `json:"cleared"`
}

func registerTools(server *sdkmcp.Server, t *tools) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "record_check_in",
		Description: "Record today's wellness check-in (replaces any check-in already recorded for the same day)",
	}, t.recordCheckIn)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "recent_check_ins",
		Description: "List the most recent check-ins, newest first, with readiness scores",
	}, t.recentCheckIns)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "has_check_in_today",
		Description: "Report whether a check-in exists for today",
	}, t.hasCheckInToday)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "readiness_trend",
		Description: "Readiness scores of recent check-ins, oldest first, for charting",
	}, t.readinessTrend)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "clear_check_ins",
		Description: "Delete the entire check-in history",
	}, t.clearCheckIns)
}

func (t *tools) recordCheckIn(ctx context.Context, _ *sdkmcp.CallToolRequest, input RecordCheckInInput) (*sdkmcp.CallToolResult, RecordCheckInOutput, error) {
	m := checkin.Metrics{
		SleepQuality:   input.SleepQuality,
		StressLevel:    input.StressLevel,
		MuscleSoreness: input.MuscleSoreness,
		Motivation:     input.Motivation,
		TimeAvailable:  input.TimeAvailable,
	}
	if err := checkin.Validate(m); err != nil {
		return nil, RecordCheckInOutput{}, mapError(err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	rec := t.store.NewCheckIn(m)
	if date := strings.TrimSpace(input.Date); date != "" {
		parsed, err := time.Parse(time.RFC3339, date)
		if err != nil {
			return nil, RecordCheckInOutput{}, mapError(fmt.Errorf("%w: %v", errInvalidDate, err))
		}
		rec.Date = parsed
	}

	t.store.AddCheckIn(ctx, rec)
	return nil, RecordCheckInOutput{CheckIn: toView(rec)}, nil
}

func (t *tools) recentCheckIns(_ context.Context, _ *sdkmcp.CallToolRequest, input CountInput) (*sdkmcp.CallToolResult, RecentCheckInsOutput, error) {
	t.mu.Lock()
	recs := t.store.RecentCheckIns(countOrDefault(input.Count))
	t.mu.Unlock()

	views := make([]CheckInView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, toView(rec))
	}
	return nil, RecentCheckInsOutput{CheckIns: views}, nil
}

func (t *tools) hasCheckInToday(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, HasCheckInTodayOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return nil, HasCheckInTodayOutput{HasCheckIn: t.store.HasCheckInForToday()}, nil
}

func (t *tools) readinessTrend(_ context.Context, _ *sdkmcp.CallToolRequest, input CountInput) (*sdkmcp.CallToolResult, TrendOutput, error) {
	t.mu.Lock()
	recs := t.store.RecentCheckIns(countOrDefault(input.Count))
	t.mu.Unlock()

	assessments := readiness.Trend(recs)
	points := make([]TrendPoint, 0, len(assessments))
	for _, a := range assessments {
		points = append(points, TrendPoint{
			Date:  a.Date.Format(time.RFC3339),
			Score: a.Score,
			Zone:  string(a.Zone),
		})
	}
	return nil, TrendOutput{Points: points}, nil
}

func (t *tools) clearCheckIns(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, ClearOutput, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.store.Clear(ctx)
	return nil, ClearOutput{Cleared: true}, nil
}

func countOrDefault(count *int) int {
	if count == nil {
		return checkin.DefaultRecentCount
	}
	return *count
}

func toView(rec checkin.CheckIn) CheckInView {
	a := readiness.Assess(rec)
	return CheckInView{
		ID:             rec.ID,
		Date:           rec.Date.Format(time.RFC3339),
		SleepQuality:   rec.SleepQuality,
		StressLevel:    rec.StressLevel,
		MuscleSoreness: rec.MuscleSoreness,
		Motivation:     rec.Motivation,
		TimeAvailable:  rec.TimeAvailable,
		Score:          a.Score,
		Zone:           string(a.Zone),
		Recommendation: a.Recommendation,
		Color:          string(a.Color),
	}
}
