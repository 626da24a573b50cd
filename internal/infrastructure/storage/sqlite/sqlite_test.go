package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"nftcatalog/internal/domain/record"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "catalog.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorage_RoundTrip(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	updated := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	rec := &record.Record{
		ID:          "abc",
		Name:        "Ape #1",
		Description: "rare",
		ImageURL:    "http://img/1",
		RarityScore: 12.5,
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   &updated,
	}

	require.NoError(t, s.Put(ctx, rec))

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestStorage_Get_Absent(t *testing.T) {
	s := openTestStorage(t)

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestStorage_Put_Overwrites(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	rec := &record.Record{ID: "abc", Name: "before", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Put(ctx, rec))

	rec.Name = "after"
	rec.RarityScore = 7
	require.NoError(t, s.Put(ctx, rec))

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.Equal(t, 7.0, got.RarityScore)

	values, err := s.Values(ctx)
	require.NoError(t, err)
	assert.Len(t, values, 1)
}

func TestStorage_Values(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	values, err := s.Values(ctx)
	require.NoError(t, err)
	assert.Empty(t, values)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Put(ctx, &record.Record{ID: id, CreatedAt: time.Now().UTC()}))
	}

	values, err = s.Values(ctx)
	require.NoError(t, err)
	assert.Len(t, values, 3)
}

func TestStorage_Remove(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	rec := &record.Record{ID: "abc", Name: "doomed", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Put(ctx, rec))

	removed, err := s.Remove(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "doomed", removed.Name)

	_, err = s.Get(ctx, "abc")
	assert.ErrorIs(t, err, record.ErrNotFound)

	_, err = s.Remove(ctx, "abc")
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestStorage_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	ctx := context.Background()

	s, err := New(path, slog.Default())
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, &record.Record{ID: "abc", Name: "durable", CreatedAt: time.Now().UTC()}))
	require.NoError(t, s.Close())

	s, err = New(path, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "durable", got.Name)
}
