package endpoints

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/frameloop/frameloop/internal/http/api"
	"github.com/frameloop/frameloop/internal/http/api/admin/packets"
	"github.com/frameloop/frameloop/internal/model"
	"github.com/frameloop/frameloop/internal/schedule"
)

type ScheduleController struct {
	store  *schedule.Store
	editor *schedule.Editor
	now    func() time.Time
}

func NewScheduleController(store *schedule.Store, editor *schedule.Editor, now func() time.Time) *ScheduleController {
	if now == nil {
		now = time.Now
	}
	return &ScheduleController{store: store, editor: editor, now: now}
}

func ScheduleModule(store *schedule.Store, editor *schedule.Editor, now func() time.Time) api.Module {
	ctl := NewScheduleController(store, editor, now)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/schedule", ctl.listEntries)
		c.GET("/schedule/active", ctl.activeEntry)
		c.POST("/schedule", ctl.createEntry)
		c.PUT("/schedule/:index", ctl.updateEntry)
		c.DELETE("/schedule/:index", ctl.deleteEntry)

		// editing-buffer session
		c.POST("/schedule/editor", ctl.openEditor)
		c.GET("/schedule/editor", ctl.editorState)
		c.PATCH("/schedule/editor", ctl.patchEditor)
		c.POST("/schedule/editor/commit", ctl.commitEditor)
		c.DELETE("/schedule/editor", ctl.discardEditor)
	})
}

// scheduleError maps schedule-layer failures onto API rejections.
func scheduleError(err error) *api.APIError {
	switch {
	case errors.Is(err, schedule.ErrIncomplete), errors.Is(err, schedule.ErrInvalidInterval):
		return &api.APIError{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	case errors.Is(err, schedule.ErrDuplicate):
		return &api.APIError{Code: http.StatusConflict, Message: err.Error()}
	case errors.Is(err, schedule.ErrIndexOutOfRange):
		return &api.APIError{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, schedule.ErrNoOpenEditor):
		return &api.APIError{Code: http.StatusConflict, Message: err.Error()}
	default:
		return &api.APIError{Code: http.StatusInternalServerError, Message: "could not persist schedule"}
	}
}

func entryFromRequest(request packets.EntryRequest) model.Media {
	return model.Media{
		Path:         &request.Path,
		WeekDays:     request.WeekDays,
		HoursStart:   &request.HoursStart,
		MinutesStart: &request.MinutesStart,
		HoursEnd:     &request.HoursEnd,
		MinutesEnd:   &request.MinutesEnd,
	}
}

// GET /api/admin/schedule
func (s *ScheduleController) listEntries(ctx *gin.Context) (any, *api.APIError) {
	entries := s.store.Entries()
	response := make([]packets.EntryResponse, 0, len(entries))
	for i, e := range entries {
		response = append(response, packets.EntryResponseFrom(i, e))
	}
	return response, nil
}

// GET /api/admin/schedule/active
func (s *ScheduleController) activeEntry(ctx *gin.Context) (any, *api.APIError) {
	now := s.now()
	for i, e := range s.store.Entries() {
		if schedule.IsActive(e, now) {
			response := packets.EntryResponseFrom(i, e)
			return packets.ActiveResponse{Active: &response}, nil
		}
	}
	return packets.ActiveResponse{}, nil
}

// POST /api/admin/schedule
func (s *ScheduleController) createEntry(ctx *gin.Context) (any, *api.APIError) {
	var request packets.EntryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := s.store.Add(ctx, entryFromRequest(request)); err != nil {
		return nil, scheduleError(err)
	}
	return gin.H{"message": "created"}, nil
}

// PUT /api/admin/schedule/:index
func (s *ScheduleController) updateEntry(ctx *gin.Context) (any, *api.APIError) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid index"}
	}

	var request packets.EntryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := s.store.Replace(ctx, index, entryFromRequest(request)); err != nil {
		return nil, scheduleError(err)
	}
	return gin.H{"message": "updated"}, nil
}

// DELETE /api/admin/schedule/:index?confirm=true
// The confirm flag stands in for the yes/no dialog: without it the delete is
// rejected and nothing changes.
func (s *ScheduleController) deleteEntry(ctx *gin.Context) (any, *api.APIError) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid index"}
	}

	if ctx.Query("confirm") != "true" {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "delete requires confirm=true"}
	}

	if err := s.store.Delete(ctx, index); err != nil {
		return nil, scheduleError(err)
	}
	return gin.H{"message": "deleted"}, nil
}

// POST /api/admin/schedule/editor
func (s *ScheduleController) openEditor(ctx *gin.Context) (any, *api.APIError) {
	var request packets.OpenEditorRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := s.editor.Open(request.Index); err != nil {
		return nil, scheduleError(err)
	}
	return s.editorState(ctx)
}

// GET /api/admin/schedule/editor
func (s *ScheduleController) editorState(ctx *gin.Context) (any, *api.APIError) {
	entry, index, open := s.editor.Buffer()
	return packets.EditorResponse{Open: open, Index: index, Entry: entry}, nil
}

// PATCH /api/admin/schedule/editor
func (s *ScheduleController) patchEditor(ctx *gin.Context) (any, *api.APIError) {
	var request packets.PatchEditorRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.Path != nil {
		if err := s.editor.SetPath(*request.Path); err != nil {
			return nil, scheduleError(err)
		}
	}
	if request.HoursStart != nil || request.MinutesStart != nil ||
		request.HoursEnd != nil || request.MinutesEnd != nil {
		if err := s.editor.SetWindow(request.HoursStart, request.MinutesStart, request.HoursEnd, request.MinutesEnd); err != nil {
			return nil, scheduleError(err)
		}
	}
	if request.WeekDays != nil {
		if err := s.editor.SetWeekDays(request.WeekDays); err != nil {
			return nil, scheduleError(err)
		}
	}
	return s.editorState(ctx)
}

// POST /api/admin/schedule/editor/commit
func (s *ScheduleController) commitEditor(ctx *gin.Context) (any, *api.APIError) {
	if err := s.editor.Commit(ctx); err != nil {
		return nil, scheduleError(err)
	}
	return gin.H{"message": "committed"}, nil
}

// DELETE /api/admin/schedule/editor
func (s *ScheduleController) discardEditor(ctx *gin.Context) (any, *api.APIError) {
	s.editor.Discard()
	return gin.H{"message": "discarded"}, nil
}
