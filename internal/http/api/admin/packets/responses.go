package packets

import "github.com/frameloop/frameloop/internal/model"

// EntryResponse is one persisted schedule entry together with its current
// index in store order. The index is positional and changes as the schedule
// re-sorts, so clients must re-fetch after every mutation.
type EntryResponse struct {
	Index        int    `json:"index"`
	Path         string `json:"path"`
	WeekDays     []int  `json:"week_days"`
	HoursStart   string `json:"hours_start"`
	MinutesStart string `json:"minutes_start"`
	HoursEnd     string `json:"hours_end"`
	MinutesEnd   string `json:"minutes_end"`
}

// EntryResponseFrom flattens a persisted entry; persisted entries always have
// every field populated.
func EntryResponseFrom(index int, m model.Media) EntryResponse {
	return EntryResponse{
		Index:        index,
		Path:         deref(m.Path),
		WeekDays:     m.WeekDays,
		HoursStart:   deref(m.HoursStart),
		MinutesStart: deref(m.MinutesStart),
		HoursEnd:     deref(m.HoursEnd),
		MinutesEnd:   deref(m.MinutesEnd),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ActiveResponse reports the entry currently selected for display, nil when
// nothing is scheduled for this moment.
type ActiveResponse struct {
	Active *EntryResponse `json:"active"`
}

// EditorResponse is the state of the editing buffer. Entry keeps the model's
// nullable fields since a buffer is incomplete by nature.
type EditorResponse struct {
	Open  bool        `json:"open"`
	Index *int        `json:"index"`
	Entry model.Media `json:"entry"`
}

// FileListResponse lists library files the picker can choose from.
type FileListResponse struct {
	Files []string `json:"files"`
}
