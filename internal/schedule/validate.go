package schedule

import (
	"errors"

	"github.com/frameloop/frameloop/internal/model"
	"github.com/frameloop/frameloop/internal/timeutil"
)

var (
	// ErrIncomplete is returned for a candidate missing any of its six fields.
	ErrIncomplete = errors.New("schedule: entry is missing required fields")
	// ErrInvalidInterval is returned when the window ends before it starts.
	ErrInvalidInterval = errors.New("schedule: start time is after end time")
	// ErrDuplicate is returned when another entry shares path and start time.
	ErrDuplicate = errors.New("schedule: entry with same path and start time exists")
	// ErrIndexOutOfRange is returned for a mutation aimed at a missing index.
	ErrIndexOutOfRange = errors.New("schedule: index out of range")
)

// ValidateCompleteness reports whether every field of the candidate is
// present. WeekDays only has to be non-nil here; the entry forms gate
// emptiness before a candidate ever reaches the store.
func ValidateCompleteness(m model.Media) bool {
	return m.Path != nil &&
		m.HoursStart != nil && m.MinutesStart != nil &&
		m.HoursEnd != nil && m.MinutesEnd != nil &&
		m.WeekDays != nil
}

// ValidateInterval reports whether both endpoints are specified and the
// window does not end before it starts. The comparison is made without the
// end-pad, so start == end is accepted and yields a one-minute window once
// the pad is applied during selection.
func ValidateInterval(m model.Media) bool {
	if m.HoursStart == nil || m.MinutesStart == nil || m.HoursEnd == nil || m.MinutesEnd == nil {
		return false
	}
	start := timeutil.ToDaySeconds(m.HoursStart, m.MinutesStart, false)
	end := timeutil.ToDaySeconds(m.HoursEnd, m.MinutesEnd, false)
	return start <= end
}

// HasDuplicate reports whether any entry other than the one at excludeIndex
// (-1 to exclude none) has the same path, start hour and start minute. The
// comparison intentionally ignores weekdays and end time: two entries showing
// the same resource from the same minute are considered the same schedule
// line even if the rest of the window differs.
func HasDuplicate(entries []model.Media, candidate model.Media, excludeIndex int) bool {
	for i, e := range entries {
		if i == excludeIndex {
			continue
		}
		if equalString(e.Path, candidate.Path) &&
			equalString(e.HoursStart, candidate.HoursStart) &&
			equalString(e.MinutesStart, candidate.MinutesStart) {
			return true
		}
	}
	return false
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Check runs the full validation a mutation must pass and returns the first
// failure as a typed error the API layer can translate into a reason.
func Check(entries []model.Media, candidate model.Media, excludeIndex int) error {
	if !ValidateCompleteness(candidate) {
		return ErrIncomplete
	}
	if !ValidateInterval(candidate) {
		return ErrInvalidInterval
	}
	if HasDuplicate(entries, candidate, excludeIndex) {
		return ErrDuplicate
	}
	return nil
}
