package schedule

import (
	"sort"

	"github.com/frameloop/frameloop/internal/model"
	"github.com/frameloop/frameloop/internal/timeutil"
)

// weekDaySentinel sorts entries without any weekday after every real day.
const weekDaySentinel = 8

func minWeekDay(m model.Media) int {
	min := weekDaySentinel
	for _, d := range m.WeekDays {
		if d < min {
			min = d
		}
	}
	return min
}

// Sort returns a new slice ordered by ascending minimum weekday, then by
// ascending start time in day-seconds. Ties keep their original relative
// order, which makes the first-match selection in SelectActive deterministic.
func Sort(entries []model.Media) []model.Media {
	out := append([]model.Media(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := minWeekDay(out[i]), minWeekDay(out[j])
		if di != dj {
			return di < dj
		}
		si := timeutil.ToDaySeconds(out[i].HoursStart, out[i].MinutesStart, false)
		sj := timeutil.ToDaySeconds(out[j].HoursStart, out[j].MinutesStart, false)
		return si < sj
	})
	return out
}
