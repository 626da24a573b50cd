package memory

import (
	"context"
	"sync"

	"nftcatalog/internal/domain/record"
)

// Storage keeps records in a process-local map. Used by tests and as
// the dev storage driver; contents do not survive restarts.
type Storage struct {
	mu      sync.RWMutex
	records map[string]record.Record
}

func New() *Storage {
	return &Storage{records: make(map[string]record.Record)}
}

func (s *Storage) Put(_ context.Context, rec *record.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = *rec
	return nil
}

func (s *Storage) Get(_ context.Context, id string) (*record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, record.ErrNotFound
	}
	return &rec, nil
}

func (s *Storage) Values(_ context.Context) ([]record.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]record.Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out, nil
}

func (s *Storage) Remove(_ context.Context, id string) (*record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, record.ErrNotFound
	}
	delete(s.records, id)
	return &rec, nil
}
