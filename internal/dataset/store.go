package dataset

import "sync"

// Store holds the dataset currently being served. A new upload replaces the
// previous dataset wholesale; readers always see a consistent snapshot.
type Store struct {
	current *Dataset
	mu      sync.RWMutex
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the current dataset.
func (s *Store) Set(ds *Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ds
}

// Current returns the active dataset, or false when nothing has been loaded.
func (s *Store) Current() (*Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}
