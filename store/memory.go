package store

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
)

var errNotInitialized = errors.New("store: not initialized")

// MemoryStore keeps runs in a map guarded by a RWMutex. Saved and returned
// runs are deep copies, so callers may mutate them freely.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]Run
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store; call Init before use.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init (re)creates the run map, discarding anything saved before.
func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = make(map[string]Run)
	return nil
}

// SaveRun inserts or replaces run by ID.
func (s *MemoryStore) SaveRun(_ context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.runs == nil {
		return errNotInitialized
	}
	s.runs[run.ID] = cloneRun(run)
	return nil
}

// GetRun returns the run with id, or ok == false when there is none.
func (s *MemoryStore) GetRun(_ context.Context, id string) (Run, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.runs == nil {
		return Run{}, false, errNotInitialized
	}
	run, ok := s.runs[id]
	if !ok {
		return Run{}, false, nil
	}
	return cloneRun(run), true, nil
}

// ListRuns returns all runs ordered by CreatedAt, then ID.
func (s *MemoryStore) ListRuns(_ context.Context) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.runs == nil {
		return nil, errNotInitialized
	}
	out := make([]Run, 0, len(s.runs))
	for _, run := range s.runs {
		out = append(out, cloneRun(run))
	}
	slices.SortFunc(out, func(a, b Run) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func cloneRun(r Run) Run {
	r.Labels = slices.Clone(r.Labels)
	r.Tour = slices.Clone(r.Tour)
	r.History = slices.Clone(r.History)
	return r
}
