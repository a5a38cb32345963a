package storage

import (
	"context"
	"sync"

	"github.com/frameloop/frameloop/internal/model"
)

// MemoryBackend holds the encoded document in memory. Used by tests and by
// the "memory" storage mode for throwaway dev runs; round-trips through the
// codec so it exercises exactly what the durable backends persist.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte

	// FailSaves makes every Save return this error; lets tests exercise the
	// commit-or-rollback contract of the schedule store.
	FailSaves error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (m *MemoryBackend) Load(_ context.Context) ([]model.Media, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNotFound
	}
	return Decode(m.data)
}

func (m *MemoryBackend) Save(_ context.Context, entries []model.Media) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves != nil {
		return m.FailSaves
	}
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

// SetRaw seeds the stored bytes directly, bypassing the codec. Tests use it
// to simulate corrupt or legacy documents.
func (m *MemoryBackend) SetRaw(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}
