package checkin

import (
	"context"
	"time"
)

// BlobStore persists the serialized collection. Get returns
// repository.ErrNotFound when the key has never been written.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Clock supplies the current time for default dates and "today" checks.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
