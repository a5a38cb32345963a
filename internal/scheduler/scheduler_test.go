package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameloop/frameloop/internal/model"
	"github.com/frameloop/frameloop/internal/schedule"
	"github.com/frameloop/frameloop/internal/storage"
)

type capturePresenter struct {
	mu    sync.Mutex
	shown []*model.Media
}

func (c *capturePresenter) Show(_ context.Context, media *model.Media) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shown = append(c.shown, media)
}

func (c *capturePresenter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.shown)
}

func (c *capturePresenter) last() *model.Media {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.shown) == 0 {
		return nil
	}
	return c.shown[len(c.shown)-1]
}

func testStore(t *testing.T, entries ...model.Media) *schedule.Store {
	t.Helper()
	ctx := context.Background()
	store := schedule.NewStore(storage.NewMemoryBackend())
	require.NoError(t, store.Initialize(ctx))
	store.Load(ctx)
	for _, e := range entries {
		require.NoError(t, store.Add(ctx, e))
	}
	return store
}

func mediaEntry(path string, day int, hs, ms, he, me string) model.Media {
	return model.Media{
		Path:         &path,
		WeekDays:     []int{day},
		HoursStart:   &hs,
		MinutesStart: &ms,
		HoursEnd:     &he,
		MinutesEnd:   &me,
	}
}

// Monday 09:40 local time.
func mondayMorning() time.Time {
	return time.Date(2024, 1, 1, 9, 40, 0, 0, time.Local)
}

func TestTickPublishesActiveEntry(t *testing.T) {
	store := testStore(t, mediaEntry("show.png", 1, "9", "0", "10", "0"))
	presenter := &capturePresenter{}

	s := New(store, presenter, time.Second, mondayMorning)
	s.Tick(context.Background())

	require.Equal(t, 1, presenter.count())
	shown := presenter.last()
	require.NotNil(t, shown)
	assert.Equal(t, "show.png", *shown.Path)
}

func TestTickPublishesNilWhenNothingScheduled(t *testing.T) {
	store := testStore(t)
	presenter := &capturePresenter{}

	s := New(store, presenter, time.Second, mondayMorning)
	s.Tick(context.Background())

	require.Equal(t, 1, presenter.count())
	assert.Nil(t, presenter.last())
}

func TestStartTicksAndStopDrains(t *testing.T) {
	store := testStore(t, mediaEntry("show.png", 1, "9", "0", "10", "0"))
	presenter := &capturePresenter{}

	s := New(store, presenter, 5*time.Millisecond, mondayMorning)
	s.Start()

	assert.Eventually(t, func() bool { return presenter.count() >= 3 }, time.Second, time.Millisecond)
	s.Stop()

	// After Stop no more ticks arrive.
	settled := presenter.count()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, settled, presenter.count())
}

func TestStopIsIdempotent(t *testing.T) {
	store := testStore(t)
	s := New(store, &capturePresenter{}, time.Millisecond, nil)

	// Stop before Start is a no-op.
	s.Stop()

	s.Start()
	s.Stop()
	s.Stop()

	// Restart after stop works.
	s.Start()
	s.Stop()
}

func TestStartTwiceRunsOneLoop(t *testing.T) {
	store := testStore(t)
	presenter := &capturePresenter{}
	s := New(store, presenter, 5*time.Millisecond, mondayMorning)

	s.Start()
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return presenter.count() >= 2 }, time.Second, time.Millisecond)
}

func TestTickReflectsStoreMutations(t *testing.T) {
	ctx := context.Background()
	store := testStore(t, mediaEntry("show.png", 1, "9", "0", "10", "0"))
	presenter := &capturePresenter{}
	s := New(store, presenter, time.Second, mondayMorning)

	s.Tick(ctx)
	require.NotNil(t, presenter.last())

	require.NoError(t, store.Delete(ctx, 0))
	s.Tick(ctx)
	assert.Nil(t, presenter.last())
}
