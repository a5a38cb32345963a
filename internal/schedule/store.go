package schedule

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/frameloop/frameloop/internal/model"
	"github.com/frameloop/frameloop/internal/storage"
)

// Store is the ordered, persisted collection of schedule entries. All
// mutations re-sort and persist the whole collection; the in-memory slice is
// only swapped after the backend write succeeds, so a failed commit never
// desyncs memory from persisted state. A single mutex serializes mutations
// and ticker reads.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend
	entries []model.Media
}

func NewStore(backend storage.Backend) *Store {
	return &Store{backend: backend}
}

// Initialize persists an empty document when none exists yet. Idempotent: an
// existing document, valid or not, is left untouched.
func (s *Store) Initialize(ctx context.Context) error {
	_, err := s.backend.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return s.backend.Save(ctx, []model.Media{})
	}
	return nil
}

// Load replaces the in-memory collection with the persisted one. Any load or
// decode failure is recoverable: it is logged and the collection resets to
// empty rather than surfacing a hard error.
func (s *Store) Load(ctx context.Context) {
	entries, err := s.backend.Load(ctx)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Error().Err(err).Msg("loading schedule failed, starting with empty schedule")
		entries = nil
	}

	s.mu.Lock()
	s.entries = Sort(entries)
	s.mu.Unlock()
}

// Entries returns a snapshot copy of the collection in store order.
func (s *Store) Entries() []model.Media {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Media(nil), s.entries...)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Add validates the entry, appends it, re-sorts and persists.
func (s *Store) Add(ctx context.Context, entry model.Media) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := Check(s.entries, entry, -1); err != nil {
		return err
	}
	next := Sort(append(append([]model.Media(nil), s.entries...), entry.Clone()))
	return s.commit(ctx, next)
}

// Replace validates the entry and overwrites the one at index, then re-sorts
// and persists. The entry at index is excluded from duplicate detection.
func (s *Store) Replace(ctx context.Context, index int, entry model.Media) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return ErrIndexOutOfRange
	}
	if err := Check(s.entries, entry, index); err != nil {
		return err
	}
	next := append([]model.Media(nil), s.entries...)
	next[index] = entry.Clone()
	return s.commit(ctx, Sort(next))
}

// Delete removes the entry at index, re-sorts and persists. Confirmation is
// the caller's responsibility; the store does not gate on it.
func (s *Store) Delete(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return ErrIndexOutOfRange
	}
	next := append([]model.Media(nil), s.entries[:index]...)
	next = append(next, s.entries[index+1:]...)
	return s.commit(ctx, Sort(next))
}

// commit persists next and only then swaps it in. Callers hold the write
// lock.
func (s *Store) commit(ctx context.Context, next []model.Media) error {
	if err := s.backend.Save(ctx, next); err != nil {
		log.Error().Err(err).Msg("persisting schedule failed, keeping previous state")
		return err
	}
	s.entries = next
	return nil
}
