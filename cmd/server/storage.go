package main

import (
	"github.com/rs/zerolog/log"

	"github.com/frameloop/frameloop/internal/config"
	"github.com/frameloop/frameloop/internal/storage"
)

// InitStorage selects and returns the configured persistence backend
func InitStorage(cfg *config.Config) storage.Backend {
	switch cfg.StorageBackend {
	case "redis":
		log.Info().Str("address", cfg.RedisAddress).Str("key", cfg.ScheduleKey).Msg("using redis schedule storage")
		return storage.NewRedisBackend(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword, cfg.ScheduleKey)

	case "postgres":
		backend, err := storage.NewPostgresBackend(cfg.DatabaseURL, cfg.ScheduleKey)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize postgres storage")
		}
		log.Info().Str("key", cfg.ScheduleKey).Msg("using postgres schedule storage")
		return backend

	case "memory":
		log.Warn().Msg("using in-memory schedule storage, schedule will not survive restarts")
		return storage.NewMemoryBackend()

	default:
		log.Info().Str("path", cfg.SchedulePath).Msg("using file schedule storage")
		return storage.NewFileBackend(cfg.SchedulePath)
	}
}
