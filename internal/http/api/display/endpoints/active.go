package endpoints

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/frameloop/frameloop/internal/http/api"
	"github.com/frameloop/frameloop/internal/http/api/admin/packets"
	"github.com/frameloop/frameloop/internal/schedule"
)

// ActiveModule mounts the display-facing polling endpoint. Displays that do
// not speak MQTT poll this instead; the value is the same one the scheduler
// publishes each tick.
func ActiveModule(store *schedule.Store, now func() time.Time) api.Module {
	if now == nil {
		now = time.Now
	}
	ctl := &ActiveController{store: store, now: now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/active", ctl.active)
	})
}

type ActiveController struct {
	store *schedule.Store
	now   func() time.Time
}

// GET /api/display/active
func (a *ActiveController) active(ctx *gin.Context) (any, *api.APIError) {
	now := a.now()
	for i, e := range a.store.Entries() {
		if schedule.IsActive(e, now) {
			response := packets.EntryResponseFrom(i, e)
			return packets.ActiveResponse{Active: &response}, nil
		}
	}
	return packets.ActiveResponse{}, nil
}
