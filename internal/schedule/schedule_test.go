package schedule

import (
	"github.com/frameloop/frameloop/internal/model"
)

// entry builds a fully-specified schedule entry for tests.
func entry(path, hoursStart, minutesStart, hoursEnd, minutesEnd string, weekDays ...int) model.Media {
	return model.Media{
		Path:         &path,
		WeekDays:     weekDays,
		HoursStart:   &hoursStart,
		MinutesStart: &minutesStart,
		HoursEnd:     &hoursEnd,
		MinutesEnd:   &minutesEnd,
	}
}

func strptr(s string) *string { return &s }

func intptr(i int) *int { return &i }
