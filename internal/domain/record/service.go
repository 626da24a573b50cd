package record

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/slog"
)

// Servicer defines the business logic for catalog operations
type Servicer interface {
	Create(ctx context.Context, in CreateInput) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	Find(ctx context.Context, id string) (*Record, error)
	Update(ctx context.Context, id string, patch Patch) (*Record, error)
	Delete(ctx context.Context, id string) (*Record, error)
}

type Service struct {
	repo  Repository
	clock Clock
	idgen IDGenerator
	log   *slog.Logger
}

// NewService creates a new record service
func NewService(repo Repository, clock Clock, idgen IDGenerator, log *slog.Logger) Servicer {
	return &Service{
		repo:  repo,
		clock: clock,
		idgen: idgen,
		log:   log.With("component", "record_service"),
	}
}

// Create assigns identity and creation time to the input and persists
// the new record. UpdatedAt stays absent until the first update.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Record, error) {
	rec := &Record{
		ID:          s.idgen.NewID(),
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		RarityScore: in.RarityScore,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.Put(ctx, rec); err != nil {
		s.log.Error("failed to create record", "record_id", rec.ID, "error", err)
		return nil, fmt.Errorf("create record: %w", err)
	}

	s.log.Info("record created", "record_id", rec.ID, "rarity_score", rec.RarityScore)
	return rec, nil
}

// List returns all records sorted by descending rarity score. Equal
// scores are ordered by older CreatedAt first, then by id.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	records, err := s.repo.Values(ctx)
	if err != nil {
		s.log.Error("failed to list records", "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.RarityScore != b.RarityScore {
			return a.RarityScore > b.RarityScore
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return records, nil
}

// Find returns a specific record by id
func (s *Service) Find(ctx context.Context, id string) (*Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find record", "record_id", id, "error", err)
		return nil, fmt.Errorf("find record: %w", err)
	}
	return rec, nil
}

// Update shallow-merges patch over the stored record. The merge is an
// explicit whitelist: only Name, Description, ImageURL and RarityScore
// are mutable, so a patch can never move the record to another key.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Record, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get record for update: %w", err)
	}

	merged := *current
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		merged.ImageURL = *patch.ImageURL
	}
	if patch.RarityScore != nil {
		merged.RarityScore = *patch.RarityScore
	}
	now := s.clock.Now()
	merged.UpdatedAt = &now

	if err := s.repo.Put(ctx, &merged); err != nil {
		s.log.Error("failed to update record", "record_id", id, "error", err)
		return nil, fmt.Errorf("update record: %w", err)
	}

	s.log.Info("record updated", "record_id", id)
	return &merged, nil
}

// Delete removes the record and returns it as confirmation
func (s *Service) Delete(ctx context.Context, id string) (*Record, error) {
	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to delete record", "record_id", id, "error", err)
		return nil, fmt.Errorf("delete record: %w", err)
	}

	s.log.Info("record deleted", "record_id", id)
	return removed, nil
}
