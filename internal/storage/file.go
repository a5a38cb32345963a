package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frameloop/frameloop/internal/model"
)

// FileBackend keeps the schedule document in a single JSON file on local
// disk. Writes go through a temp file + rename so a crash mid-write never
// leaves a torn document behind.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (f *FileBackend) Load(_ context.Context) ([]model.Media, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", f.path, err)
	}
	return Decode(data)
}

func (f *FileBackend) Save(_ context.Context, entries []model.Media) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".schedule-*.json")
	if err != nil {
		return fmt.Errorf("storage: temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("storage: replace %s: %w", f.path, err)
	}
	return nil
}
