package schedule

import (
	"context"
	"errors"
	"sync"

	"github.com/frameloop/frameloop/internal/model"
)

// ErrNoOpenEditor is returned when a buffer operation arrives while no edit
// interaction is open.
var ErrNoOpenEditor = errors.New("schedule: no editing session is open")

// Editor is the single in-progress entry buffer. One interaction is open at a
// time: Open starts it (blank, or seeded from an existing index), the Set
// methods fill it in, and Commit or Discard ends it. The buffer never aliases
// store state, so abandoning an edit leaves the schedule untouched.
type Editor struct {
	mu     sync.Mutex
	store  *Store
	open   bool
	buffer model.Media
	index  *int // nil = creating a new entry
}

func NewEditor(store *Store) *Editor {
	return &Editor{store: store}
}

// Open starts an editing session. With a nil index the buffer is blank; with
// an index it is seeded with a copy of the entry at that position. Opening
// over an existing session discards the previous buffer.
func (e *Editor) Open(index *int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.buffer = model.Media{}
	e.index = nil

	if index != nil {
		entries := e.store.Entries()
		if *index < 0 || *index >= len(entries) {
			e.open = false
			return ErrIndexOutOfRange
		}
		e.buffer = entries[*index].Clone()
		i := *index
		e.index = &i
	}
	e.open = true
	return nil
}

// SetPath records a picked resource path. An empty string means the picker
// was cancelled and leaves the current path unchanged.
func (e *Editor) SetPath(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrNoOpenEditor
	}
	if path == "" {
		return nil
	}
	e.buffer.Path = &path
	return nil
}

// SetWindow records the start/end time labels. Nil labels leave the
// corresponding field unchanged.
func (e *Editor) SetWindow(hoursStart, minutesStart, hoursEnd, minutesEnd *string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrNoOpenEditor
	}
	if hoursStart != nil {
		e.buffer.HoursStart = hoursStart
	}
	if minutesStart != nil {
		e.buffer.MinutesStart = minutesStart
	}
	if hoursEnd != nil {
		e.buffer.HoursEnd = hoursEnd
	}
	if minutesEnd != nil {
		e.buffer.MinutesEnd = minutesEnd
	}
	return nil
}

// SetWeekDays replaces the buffered weekday set.
func (e *Editor) SetWeekDays(days []int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrNoOpenEditor
	}
	e.buffer.WeekDays = append([]int(nil), days...)
	return nil
}

// Buffer returns a copy of the in-progress entry, the index being edited
// (nil when creating) and whether a session is open.
func (e *Editor) Buffer() (model.Media, *int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return model.Media{}, nil, false
	}
	var idx *int
	if e.index != nil {
		i := *e.index
		idx = &i
	}
	return e.buffer.Clone(), idx, true
}

// Commit validates the buffer and applies it to the store: Add when creating,
// Replace when editing an existing index. The buffer is reset only on
// success, so a rejected commit can be corrected and retried.
func (e *Editor) Commit(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.open {
		return ErrNoOpenEditor
	}

	var err error
	if e.index != nil {
		err = e.store.Replace(ctx, *e.index, e.buffer)
	} else {
		err = e.store.Add(ctx, e.buffer)
	}
	if err != nil {
		return err
	}

	e.reset()
	return nil
}

// Discard closes the session and drops the buffer. Safe to call when no
// session is open.
func (e *Editor) Discard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

func (e *Editor) reset() {
	e.open = false
	e.buffer = model.Media{}
	e.index = nil
}
