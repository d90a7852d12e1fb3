package checkin_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/readycheck/internal/domain/checkin"
	"github.com/stretchr/testify/require"
)

func TestNew_GeneratesIDAndKeepsDate(t *testing.T) {
	date := time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC)
	m := checkin.Metrics{SleepQuality: 4, StressLevel: 2, MuscleSoreness: 3, Motivation: 5, TimeAvailable: 45}

	a := checkin.New(date, m)
	b := checkin.New(date, m)

	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
	require.True(t, a.Date.Equal(date))
	require.Equal(t, m, a.Metrics)
	require.Equal(t, 45, a.TimeAvailable)
}

func TestNew_ZeroDateMeansNow(t *testing.T) {
	before := time.Now()
	rec := checkin.New(time.Time{}, checkin.Metrics{})
	after := time.Now()

	require.False(t, rec.Date.Before(before))
	require.False(t, rec.Date.After(after))
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)

	morning := time.Date(2026, 5, 1, 0, 5, 0, 0, loc)
	night := time.Date(2026, 5, 1, 23, 55, 0, 0, loc)
	nextDay := time.Date(2026, 5, 2, 0, 1, 0, 0, loc)

	require.True(t, checkin.SameDay(morning, night, loc))
	require.False(t, checkin.SameDay(night, nextDay, loc))

	// Same UTC day, different local days.
	require.True(t, checkin.SameDay(night.UTC(), nextDay.UTC(), time.UTC))
	require.False(t, checkin.SameDay(night.UTC(), nextDay.UTC(), loc))
}

func TestSameDay_NilLocationUsesLocal(t *testing.T) {
	now := time.Now()
	require.True(t, checkin.SameDay(now, now, nil))
}
