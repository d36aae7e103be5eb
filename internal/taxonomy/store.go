package taxonomy

import (
	"context"
	"sync/atomic"
)

// Store holds the current taxonomy snapshot. Reload swaps the whole snapshot atomically,
// so readers either see the old taxonomy or the new one, never a mix.
type Store struct {
	current atomic.Pointer[Taxonomy]
}

// NewStore returns a store holding t. A nil t leaves the store empty.
func NewStore(t *Taxonomy) *Store {
	s := &Store{}
	if t != nil {
		s.current.Store(t)
	}
	return s
}

// Get returns the current snapshot, or ErrTaxonomyUnavailable if none has been loaded.
func (s *Store) Get() (*Taxonomy, error) {
	if s == nil {
		return nil, ErrTaxonomyUnavailable
	}
	t := s.current.Load()
	if t == nil {
		return nil, ErrTaxonomyUnavailable
	}
	return t, nil
}

// Reload builds a new snapshot with load and publishes it. On failure the current
// snapshot is left untouched.
func (s *Store) Reload(ctx context.Context, load Loader) (*Taxonomy, error) {
	t, err := load(ctx)
	if err != nil {
		return nil, err
	}
	s.current.Store(t)
	return t, nil
}
