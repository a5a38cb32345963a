package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/frameloop/frameloop/internal/model"
)

// PostgresBackend stores the schedule document as one jsonb row keyed by
// name. The whole-document contract is the same as the other backends; the
// database only buys durability, not row-per-entry access.
type PostgresBackend struct {
	db  *sqlx.DB
	key string
}

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS schedule_documents (
	key        text PRIMARY KEY,
	document   jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
);`

func NewPostgresBackend(databaseURL, key string) (*PostgresBackend, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("storage: connect postgres: %w", err)
	}
	if _, err := db.Exec(createDocumentsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: ensure schedule_documents: %w", err)
	}
	return &PostgresBackend{db: db, key: key}, nil
}

func (p *PostgresBackend) Load(ctx context.Context) ([]model.Media, error) {
	var data []byte
	const q = `SELECT document FROM schedule_documents WHERE key = $1;`
	err := p.db.GetContext(ctx, &data, q, p.key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("key", p.key).Msg("load schedule document failed")
		return nil, fmt.Errorf("storage: postgres get %s: %w", p.key, err)
	}
	return Decode(data)
}

func (p *PostgresBackend) Save(ctx context.Context, entries []model.Media) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	const q = `
	INSERT INTO schedule_documents (key, document, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET document = EXCLUDED.document, updated_at = now();`
	if _, err := p.db.ExecContext(ctx, q, p.key, data); err != nil {
		log.Error().Err(err).Str("key", p.key).Msg("save schedule document failed")
		return fmt.Errorf("storage: postgres upsert %s: %w", p.key, err)
	}
	return nil
}

func (p *PostgresBackend) Close() error {
	return p.db.Close()
}
