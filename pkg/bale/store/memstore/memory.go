package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/hamza2masmoudi/BALE-project-sub001/pkg/bale/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu       sync.RWMutex
	verdicts map[string]store.Record
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		verdicts: make(map[string]store.Record),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveVerdict inserts or replaces a record, keyed by ID.
func (s *Store) SaveVerdict(ctx context.Context, r store.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verdicts[r.ID] = r
	return nil
}

// GetVerdict looks up a record by ID.
func (s *Store) GetVerdict(ctx context.Context, id string) (store.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.verdicts[id]
	return r, ok, nil
}

// ListVerdicts returns records for a goal, newest first.
func (s *Store) ListVerdicts(ctx context.Context, goal string, limit int) ([]store.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Record
	for _, r := range s.verdicts {
		if goal != "" && r.Goal != goal {
			continue
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].EvaluatedAt.Equal(out[j].EvaluatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].EvaluatedAt.After(out[j].EvaluatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
