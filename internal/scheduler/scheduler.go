package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/frameloop/frameloop/internal/display"
	"github.com/frameloop/frameloop/internal/schedule"
)

// DefaultInterval is how often the active entry is re-evaluated.
const DefaultInterval = time.Second

// Scheduler re-evaluates the active schedule entry on a fixed interval and
// publishes the result to a presenter. Each tick is independent and
// idempotent: a missed tick costs nothing but display latency.
type Scheduler struct {
	store     *schedule.Store
	presenter display.Presenter
	interval  time.Duration
	now       func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New builds a stopped scheduler. A non-positive interval falls back to
// DefaultInterval; now may be nil for wall-clock time.
func New(store *schedule.Store, presenter display.Presenter, interval time.Duration, now func() time.Time) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		store:     store,
		presenter: presenter,
		interval:  interval,
		now:       now,
	}
}

// Start launches the tick loop. Calling Start on a running scheduler is a
// no-op. The first evaluation happens immediately rather than one interval
// later, so a fresh mount shows the right entry at once.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	log.Info().Dur("interval", s.interval).Msg("scheduler started")
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.Tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs a single evaluation: select the active entry for now and hand it
// (or nil) to the presenter.
func (s *Scheduler) Tick(ctx context.Context) {
	active, ok := schedule.SelectActive(s.store.Entries(), s.now())
	if ok {
		s.presenter.Show(ctx, &active)
		return
	}
	s.presenter.Show(ctx, nil)
}

// Stop cancels the loop and waits for it to drain. Idempotent, and safe to
// call on a scheduler that was never started.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	log.Info().Msg("scheduler stopped")
}
