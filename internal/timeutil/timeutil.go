package timeutil

import (
	"strconv"
	"time"
)

// EndPadSeconds widens an end label to the last second of its minute, so an
// end time of 23:59 matches through 23:59:59.
const EndPadSeconds = 59

// ToDaySeconds converts hour/minute text labels into seconds since midnight.
// When end is true the result is padded to the last second of the labeled
// minute. A nil label yields 0.
func ToDaySeconds(hours, minutes *string, end bool) int {
	if hours == nil || minutes == nil {
		return 0
	}
	h, _ := strconv.Atoi(*hours)
	m, _ := strconv.Atoi(*minutes)
	secs := h*3600 + m*60
	if end {
		secs += EndPadSeconds
	}
	return secs
}

// DaySeconds returns t's local wall-clock time as seconds since midnight.
func DaySeconds(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// Weekday returns the ISO weekday of t: 1=Monday .. 7=Sunday.
func Weekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
