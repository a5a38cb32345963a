package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-based settings
type Config struct {
	Environment   string
	ServerAddress string
	JWTSecret     string
	AdminPassword string

	// persistence
	StorageBackend string // file | redis | postgres | memory
	ScheduleKey    string
	SchedulePath   string
	DatabaseURL    string
	RedisAddress   string
	RedisUsername  string
	RedisPassword  string

	// presentation
	MQTTBrokerURL string
	DisplayID     string

	MediaDir     string
	TickInterval time.Duration
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local runs.
func Load() (*Config, error) {
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}

	cfg := &Config{
		Environment:   os.Getenv("APP_ENV"),
		ServerAddress: getenv("SERVER_ADDRESS", ":8080"),
		JWTSecret:     jwtSecret,
		AdminPassword: adminPassword,

		StorageBackend: getenv("STORAGE_BACKEND", "file"),
		ScheduleKey:    getenv("SCHEDULE_KEY", "frameloop:schedule"),
		SchedulePath:   getenv("SCHEDULE_PATH", "./data/schedule.json"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddress:   os.Getenv("REDIS_ADDRESS"),
		RedisUsername:  os.Getenv("REDIS_USERNAME"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),

		MQTTBrokerURL: os.Getenv("MQTT_BROKER_URL"),
		DisplayID:     getenv("DISPLAY_ID", "default"),

		MediaDir:     getenv("MEDIA_DIR", "./media"),
		TickInterval: time.Second,
	}

	if raw := os.Getenv("TICK_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TICK_INTERVAL %q: %w", raw, err)
		}
		cfg.TickInterval = interval
	}

	switch cfg.StorageBackend {
	case "file", "redis", "postgres", "memory":
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
	if cfg.StorageBackend == "redis" && cfg.RedisAddress == "" {
		return nil, fmt.Errorf("REDIS_ADDRESS is required for the redis backend")
	}
	if cfg.StorageBackend == "postgres" && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
