package schedule

import (
	"time"

	"github.com/frameloop/frameloop/internal/model"
	"github.com/frameloop/frameloop/internal/timeutil"
)

// IsActive reports whether the entry should be displayed at now: the entry is
// complete, now's ISO weekday is in its weekday set, and now's time of day
// falls inside [start, end+59s] inclusive.
func IsActive(m model.Media, now time.Time) bool {
	if !ValidateCompleteness(m) {
		return false
	}

	day := timeutil.Weekday(now)
	member := false
	for _, d := range m.WeekDays {
		if d == day {
			member = true
			break
		}
	}
	if !member {
		return false
	}

	secs := timeutil.DaySeconds(now)
	start := timeutil.ToDaySeconds(m.HoursStart, m.MinutesStart, false)
	end := timeutil.ToDaySeconds(m.HoursEnd, m.MinutesEnd, true)
	return secs >= start && secs <= end
}

// SelectActive returns the first active entry in the given order. Entries are
// expected in store order (sorted by minimum weekday then start time), so
// overlapping windows resolve deterministically: lowest minimum weekday wins,
// then earliest start. No match is a normal state, not an error.
func SelectActive(entries []model.Media, now time.Time) (model.Media, bool) {
	for _, e := range entries {
		if IsActive(e, now) {
			return e, true
		}
	}
	return model.Media{}, false
}
