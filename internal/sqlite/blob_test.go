package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/readycheck/internal/domain/checkin"
	"github.com/rpggio/readycheck/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestBlobRepository_GetSet(t *testing.T) {
	db := NewTestDB(t)
	repo, err := NewBlobRepository(db, "default")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Get(ctx, "checkIns")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Set(ctx, "checkIns", []byte(`[]`)))
	got, err := repo.Get(ctx, "checkIns")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), got)

	// Overwrite replaces rather than duplicating
	require.NoError(t, repo.Set(ctx, "checkIns", []byte(`[1]`)))
	got, err = repo.Get(ctx, "checkIns")
	require.NoError(t, err)
	require.Equal(t, []byte(`[1]`), got)

	var rows int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blobs`).Scan(&rows))
	require.Equal(t, 1, rows)
}

func TestBlobRepository_NamespaceIsolation(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	alice, err := NewBlobRepository(db, "alice")
	require.NoError(t, err)
	bob, err := NewBlobRepository(db, "bob")
	require.NoError(t, err)

	require.NoError(t, alice.Set(ctx, "checkIns", []byte("a")))
	_, err = bob.Get(ctx, "checkIns")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBlobRepository_RejectsEmptyNamespace(t *testing.T) {
	db := NewTestDB(t)
	_, err := NewBlobRepository(db, "")
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestBlobRepository_BacksCheckInStore(t *testing.T) {
	db := NewTestDB(t)
	repo, err := NewBlobRepository(db, "default")
	require.NoError(t, err)
	ctx := context.Background()

	now := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
	store := checkin.NewStore(ctx, repo, checkin.WithLocation(time.UTC))
	rec := checkin.New(now, checkin.Metrics{SleepQuality: 4, StressLevel: 2, MuscleSoreness: 2, Motivation: 4, TimeAvailable: 60})
	store.AddCheckIn(ctx, rec)

	reloaded := checkin.NewStore(ctx, repo, checkin.WithLocation(time.UTC))
	all := reloaded.CheckIns()
	require.Len(t, all, 1)
	require.Equal(t, rec.ID, all[0].ID)
	require.Equal(t, rec.Metrics, all[0].Metrics)
	require.WithinDuration(t, rec.Date, all[0].Date, time.Second)
}
