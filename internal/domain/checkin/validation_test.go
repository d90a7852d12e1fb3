package checkin_test

import (
	"testing"

	"github.com/rpggio/readycheck/internal/domain/checkin"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := checkin.Metrics{SleepQuality: 1, StressLevel: 5, MuscleSoreness: 3, Motivation: 2, TimeAvailable: 0}
	require.NoError(t, checkin.Validate(valid))

	valid.TimeAvailable = 120
	require.NoError(t, checkin.Validate(valid))

	tests := []struct {
		name   string
		mutate func(*checkin.Metrics)
		field  string
	}{
		{"sleep too high", func(m *checkin.Metrics) { m.SleepQuality = 99 }, "sleepQuality"},
		{"stress too low", func(m *checkin.Metrics) { m.StressLevel = 0 }, "stressLevel"},
		{"soreness too high", func(m *checkin.Metrics) { m.MuscleSoreness = 6 }, "muscleSoreness"},
		{"motivation negative", func(m *checkin.Metrics) { m.Motivation = -1 }, "motivation"},
		{"time too long", func(m *checkin.Metrics) { m.TimeAvailable = 121 }, "timeAvailable"},
		{"time negative", func(m *checkin.Metrics) { m.TimeAvailable = -1 }, "timeAvailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid
			tt.mutate(&m)
			err := checkin.Validate(m)
			require.ErrorIs(t, err, checkin.ErrInvalidInput)
			require.Contains(t, err.Error(), tt.field)
		})
	}
}
