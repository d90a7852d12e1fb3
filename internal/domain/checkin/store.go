package checkin

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/rpggio/readycheck/internal/repository"
)

// Store owns the persisted check-in collection, kept newest first with at
// most one record per calendar day.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
type Store struct {
	blobs  BlobStore
	logger *slog.Logger
	clock  Clock
	loc    *time.Location
	key    string

	items       []CheckIn
	subscribers map[int]func([]CheckIn)
	nextSubID   int
}

// NewStore creates a store and loads whatever collection blobs holds.
// Load failures are logged and leave the store empty.
func NewStore(ctx context.Context, blobs BlobStore, opts ...Option) *Store {
	s := &Store{
		blobs:       blobs,
		logger:      slog.New(slog.DiscardHandler),
		clock:       systemClock{},
		loc:         time.Local,
		key:         DefaultKey,
		items:       []CheckIn{},
		subscribers: make(map[int]func([]CheckIn)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.blobs.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("failed to read check-ins", "key", s.key, "error", err)
		}
		return
	}

	items, err := DecodeCollection(data)
	if err != nil {
		s.logger.Error("failed to decode check-ins", "key", s.key, "error", err)
		return
	}

	sortNewestFirst(items)
	kept := s.newestPerDay(items)
	if dropped := len(items) - len(kept); dropped > 0 {
		s.logger.Warn("dropped same-day check-ins on load", "key", s.key, "dropped", dropped)
	}
	s.items = kept
	s.logger.Debug("loaded check-ins", "key", s.key, "count", len(kept))
}

// newestPerDay keeps the newest record of each calendar day. Persisted
// records written under another location can share a day in s.loc.
// items must already be sorted newest first.
func (s *Store) newestPerDay(items []CheckIn) []CheckIn {
	kept := make([]CheckIn, 0, len(items))
	for _, rec := range items {
		if len(kept) > 0 && SameDay(kept[len(kept)-1].Date, rec.Date, s.loc) {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

// NewCheckIn creates a record dated by the store's clock.
func (s *Store) NewCheckIn(m Metrics) CheckIn {
	return New(s.clock.Now(), m)
}

// AddCheckIn replaces any record on the same calendar day as rec, keeps the
// collection sorted and writes it through. A failed write is logged; the
// in-memory collection still reflects rec.
func (s *Store) AddCheckIn(ctx context.Context, rec CheckIn) {
	kept := make([]CheckIn, 0, len(s.items)+1)
	for _, existing := range s.items {
		if !SameDay(existing.Date, rec.Date, s.loc) {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, rec)
	sortNewestFirst(kept)
	s.items = kept

	s.persist(ctx)
	s.notify()
}

// Clear removes every record and persists the empty collection.
func (s *Store) Clear(ctx context.Context) {
	s.items = []CheckIn{}
	s.persist(ctx)
	s.notify()
}

func (s *Store) persist(ctx context.Context) {
	data, err := EncodeCollection(s.items)
	if err != nil {
		s.logger.Error("failed to encode check-ins", "key", s.key, "error", err)
		return
	}
	if err := s.blobs.Set(ctx, s.key, data); err != nil {
		s.logger.Error("failed to save check-ins", "key", s.key, "error", err)
	}
}

// CheckIns returns a copy of the collection, newest first.
func (s *Store) CheckIns() []CheckIn {
	return slices.Clone(s.items)
}

// RecentCheckIns returns up to count of the newest records. A negative
// count is treated as zero.
func (s *Store) RecentCheckIns(count int) []CheckIn {
	count = max(0, min(count, len(s.items)))
	return slices.Clone(s.items[:count])
}

// Recent returns the DefaultRecentCount newest records.
func (s *Store) Recent() []CheckIn {
	return s.RecentCheckIns(DefaultRecentCount)
}

// HasCheckInForToday reports whether any record falls on today's calendar
// day, where today is read from the clock on every call.
func (s *Store) HasCheckInForToday() bool {
	now := s.clock.Now()
	for _, rec := range s.items {
		if SameDay(rec.Date, now, s.loc) {
			return true
		}
	}
	return false
}

// Subscribe registers fn to receive the collection after every change.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func([]CheckIn)) (cancel func()) {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() { delete(s.subscribers, id) }
}

func (s *Store) notify() {
	for _, fn := range s.subscribers {
		fn(s.CheckIns())
	}
}

func sortNewestFirst(items []CheckIn) {
	slices.SortStableFunc(items, func(a, b CheckIn) int {
		return b.Date.Compare(a.Date)
	})
}
