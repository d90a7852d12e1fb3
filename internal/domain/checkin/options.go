package checkin

import (
	"log/slog"
	"time"
)

// DefaultKey is the blob key the collection is stored under.
const DefaultKey = "checkIns"

// DefaultRecentCount is the history length returned by Recent.
const DefaultRecentCount = 7

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the sink for load and persist failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLocation sets the calendar used for same-day comparisons.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}
