package record

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// fakeRepo is a map-backed Repository for tests.
type fakeRepo struct {
	records map[string]Record
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]Record)}
}

func (r *fakeRepo) Put(_ context.Context, rec *Record) error {
	r.records[rec.ID] = *rec
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id string) (*Record, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (r *fakeRepo) Values(_ context.Context) ([]Record, error) {
	out := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeRepo) Remove(_ context.Context, id string) (*Record, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.records, id)
	return &rec, nil
}

// fakeClock returns a fixed instant, advanced manually.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// seqIDGen produces id-1, id-2, ...
type seqIDGen struct {
	n int
}

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestService() (Servicer, *fakeRepo, *fakeClock) {
	repo := newFakeRepo()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewService(repo, clock, &seqIDGen{}, slog.Default())
	return svc, repo, clock
}

func TestService_Create(t *testing.T) {
	svc, _, clock := newTestService()
	ctx := context.Background()

	rec, err := svc.Create(ctx, CreateInput{Name: "Ape #1", Description: "rare ape", ImageURL: "http://img/1"})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Ape #1", rec.Name)
	assert.Equal(t, "rare ape", rec.Description)
	assert.Equal(t, "http://img/1", rec.ImageURL)
	assert.Zero(t, rec.RarityScore)
	assert.Equal(t, clock.now, rec.CreatedAt)
	assert.Nil(t, rec.UpdatedAt)
}

func TestService_Create_UniqueIDs(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		rec, err := svc.Create(ctx, CreateInput{Name: fmt.Sprintf("nft-%d", i)})
		require.NoError(t, err)
		assert.False(t, seen[rec.ID], "id %s generated twice", rec.ID)
		seen[rec.ID] = true
	}
}

func TestService_Create_RarityOverride(t *testing.T) {
	svc, _, _ := newTestService()

	rec, err := svc.Create(context.Background(), CreateInput{Name: "Punk", RarityScore: 42.5})
	require.NoError(t, err)
	assert.Equal(t, 42.5, rec.RarityScore)
}

func TestService_CreateThenFind_RoundTrip(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Ape", RarityScore: 7})
	require.NoError(t, err)

	found, err := svc.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestService_Find_NotFound(t *testing.T) {
	svc, repo, _ := newTestService()

	rec, err := svc.Find(context.Background(), "nonexistent-id")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, rec)
	assert.Empty(t, repo.records, "miss must have no side effects")
}

func TestService_List_DescendingRarity(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Name: "A", RarityScore: 10})
	require.NoError(t, err)
	b, err := svc.Create(ctx, CreateInput{Name: "B", RarityScore: 50})
	require.NoError(t, err)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, b.ID, records[0].ID)
	assert.Equal(t, a.ID, records[1].ID)

	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(t, records[i-1].RarityScore, records[i].RarityScore)
	}
}

func TestService_List_TieBreak(t *testing.T) {
	svc, _, clock := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateInput{Name: "older", RarityScore: 5})
	require.NoError(t, err)
	clock.now = clock.now.Add(time.Minute)
	second, err := svc.Create(ctx, CreateInput{Name: "newer", RarityScore: 5})
	require.NoError(t, err)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID, "older record wins the tie")
	assert.Equal(t, second.ID, records[1].ID)
}

func TestService_Update_MergeLaw(t *testing.T) {
	svc, _, clock := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name:        "Ape",
		Description: "original",
		ImageURL:    "http://img/ape",
		RarityScore: 3,
	})
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Hour)
	name := "X"
	updated, err := svc.Update(ctx, created.ID, Patch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "X", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.ImageURL, updated.ImageURL)
	assert.Equal(t, created.RarityScore, updated.RarityScore)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, clock.now, *updated.UpdatedAt)
	assert.True(t, !updated.UpdatedAt.Before(updated.CreatedAt))

	// The merged record is what the store now holds.
	stored, err := svc.Find(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestService_Update_RarityScore(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Ape"})
	require.NoError(t, err)

	score := 99.0
	updated, err := svc.Update(ctx, created.ID, Patch{RarityScore: &score})
	require.NoError(t, err)
	assert.Equal(t, 99.0, updated.RarityScore)
	assert.Equal(t, created.Name, updated.Name)
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	name := "X"
	rec, err := svc.Update(context.Background(), "missing", Patch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, rec)
}

func TestService_Delete(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "doomed"})
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, removed)

	_, err = svc.Find(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_MissIdempotent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "once"})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
