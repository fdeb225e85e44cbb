package memory

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore"
)

// Store keeps slots in process memory. A positive maxBytes caps the sum of
// key and value lengths, the way a browser origin caps its local storage.
type Store struct {
	mu       sync.RWMutex
	slots    map[string]string
	used     int
	maxBytes int
}

func New(maxBytes int) *Store {
	return &Store{slots: map[string]string{}, maxBytes: maxBytes}
}

func (s *Store) Driver() slotstore.Driver { return slotstore.DriverMemory }

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.slots[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := s.used
	if old, ok := s.slots[key]; ok {
		used -= len(key) + len(old)
	}
	used += len(key) + len(value)

	if s.maxBytes > 0 && used > s.maxBytes {
		return slotstore.ErrQuotaExceeded
	}

	s.slots[key] = value
	s.used = used
	return nil
}

func (s *Store) Close() error { return nil }

// Used returns the bytes currently counted against the quota.
func (s *Store) Used() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.used
}

var _ slotstore.Store = (*Store)(nil)
