package packets

// LoginRequest carries the single admin credential.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// EntryRequest is a fully-specified schedule entry for the one-shot create
// and update endpoints. Time labels stay text end to end, matching how the
// schedule stores them.
type EntryRequest struct {
	Path         string `json:"path" binding:"required"`
	WeekDays     []int  `json:"week_days" binding:"required,min=1,dive,min=1,max=7"`
	HoursStart   string `json:"hours_start" binding:"required,numeric"`
	MinutesStart string `json:"minutes_start" binding:"required,numeric"`
	HoursEnd     string `json:"hours_end" binding:"required,numeric"`
	MinutesEnd   string `json:"minutes_end" binding:"required,numeric"`
}

// OpenEditorRequest starts an editing session; Index is present when editing
// an existing entry and absent when creating a new one.
type OpenEditorRequest struct {
	Index *int `json:"index"`
}

// PatchEditorRequest updates the in-progress buffer. Absent fields are left
// unchanged; an empty Path means the file picker was cancelled and is also a
// no-change.
type PatchEditorRequest struct {
	Path         *string `json:"path"`
	WeekDays     []int   `json:"week_days" binding:"omitempty,min=1,dive,min=1,max=7"`
	HoursStart   *string `json:"hours_start" binding:"omitempty,numeric"`
	MinutesStart *string `json:"minutes_start" binding:"omitempty,numeric"`
	HoursEnd     *string `json:"hours_end" binding:"omitempty,numeric"`
	MinutesEnd   *string `json:"minutes_end" binding:"omitempty,numeric"`
}
