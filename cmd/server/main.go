package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/frameloop/frameloop/internal/config"
	"github.com/frameloop/frameloop/internal/display"
	"github.com/frameloop/frameloop/internal/files"
	"github.com/frameloop/frameloop/internal/schedule"
	"github.com/frameloop/frameloop/internal/scheduler"
)

func main() {
	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// persistence
	backend := InitStorage(cfg)
	store := schedule.NewStore(backend)
	ctx := context.Background()
	if err := store.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize schedule storage")
	}
	store.Load(ctx)

	editor := schedule.NewEditor(store)
	library := files.NewLibrary(cfg.MediaDir)

	// presentation
	presenter := InitPresenter(cfg)

	// scheduler loop
	loop := scheduler.New(store, presenter, cfg.TickInterval, nil)
	loop.Start()

	// HTTP API
	r := gin.Default()
	if err := RegisterRoutes(r, cfg, store, editor, library); err != nil {
		log.Fatal().Err(err).Msg("failed to register routes")
	}

	srv := &http.Server{Addr: cfg.ServerAddress, Handler: r}
	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// block until shutdown signal, then unwind: loop first, then the server
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	log.Info().Msg("shutting down")
	loop.Stop()
	if closer, ok := presenter.(interface{ Close() }); ok {
		closer.Close()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// InitPresenter connects the MQTT presenter when a broker is configured and
// falls back to logging transitions otherwise.
func InitPresenter(cfg *config.Config) display.Presenter {
	if cfg.MQTTBrokerURL == "" {
		log.Info().Msg("no MQTT broker configured, logging display changes")
		return display.NewLogPresenter()
	}

	presenter, err := display.NewMQTTPresenter(cfg.MQTTBrokerURL, cfg.DisplayID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect MQTT presenter")
	}
	log.Info().Str("broker", cfg.MQTTBrokerURL).Str("display", cfg.DisplayID).Msg("publishing active entry over MQTT")
	return presenter
}
