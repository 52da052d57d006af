package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/promoforge/compositor/asset"
)

// MemoryStore is the in-process fallback used when no backend is configured.
// It never returns ErrStorageUnavailable.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
	newID   func() string
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{newID: func() string { return uuid.NewString() }}
}

func (s *MemoryStore) Append(_ context.Context, req asset.Request, createdAt time.Time) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := entryFrom(s.newID(), req, createdAt)
	s.entries = prepend(s.entries, e)
	return e, nil
}

func (s *MemoryStore) List(_ context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true, nil
		}
	}
	return Entry{}, false, nil
}

func (s *MemoryStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return nil
}
