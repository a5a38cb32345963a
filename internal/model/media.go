package model

// Media is one schedulable item: a displayable resource plus the weekdays and
// daily time window during which it may be shown. The time labels are kept as
// text exactly as entered (0-23 / 0-59); pointer fields are nil only while an
// entry is being edited, never once persisted.
type Media struct {
	Path         *string `json:"path"`
	WeekDays     []int   `json:"week_days"`
	HoursStart   *string `json:"hours_start"`
	MinutesStart *string `json:"minutes_start"`
	HoursEnd     *string `json:"hours_end"`
	MinutesEnd   *string `json:"minutes_end"`
}

// Clone returns a deep copy, so editing a buffer never aliases store state.
func (m Media) Clone() Media {
	out := Media{}
	out.Path = cloneString(m.Path)
	out.HoursStart = cloneString(m.HoursStart)
	out.MinutesStart = cloneString(m.MinutesStart)
	out.HoursEnd = cloneString(m.HoursEnd)
	out.MinutesEnd = cloneString(m.MinutesEnd)
	if m.WeekDays != nil {
		out.WeekDays = append([]int(nil), m.WeekDays...)
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
