package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/frameloop/frameloop/internal/model"
)

// SchemaVersion is stamped into every persisted document so future field
// additions can migrate old saves instead of breaking on them.
const SchemaVersion = 1

// ErrNotFound is returned by Load when no document has ever been persisted.
var ErrNotFound = errors.New("storage: schedule document not found")

// Backend persists the whole schedule as a single document. Every Save is a
// full replace; there are no partial updates.
type Backend interface {
	Load(ctx context.Context) ([]model.Media, error)
	Save(ctx context.Context, entries []model.Media) error
}

type document struct {
	Version int           `json:"version"`
	Entries []model.Media `json:"entries"`
}

// Encode serializes entries as a versioned JSON document.
func Encode(entries []model.Media) ([]byte, error) {
	if entries == nil {
		entries = []model.Media{}
	}
	return json.Marshal(document{Version: SchemaVersion, Entries: entries})
}

// Decode parses a persisted document. Bare JSON arrays (saves that predate
// the version envelope) are still accepted.
func Decode(data []byte) ([]model.Media, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []model.Media
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("storage: decode legacy document: %w", err)
		}
		return entries, nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("storage: decode document: %w", err)
	}
	if doc.Version > SchemaVersion {
		return nil, fmt.Errorf("storage: unsupported schema version %d", doc.Version)
	}
	return doc.Entries, nil
}
