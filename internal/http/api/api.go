package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the failure envelope handlers return; it is rendered as
// {"error": message} with the given status code.
type APIError struct {
	Code    int
	Message string
}

// HandlerFunc is the shape of every endpoint: a result or an APIError.
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// ResolveEndpoint adapts a HandlerFunc to gin.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}
		ctx.JSON(http.StatusOK, result)
	}
}

// Controller wraps a gin group and registers HandlerFunc endpoints on it.
type Controller struct {
	Group *gin.RouterGroup
}

func (c *Controller) GET(path string, h HandlerFunc)    { c.Group.GET(path, ResolveEndpoint(h)) }
func (c *Controller) POST(path string, h HandlerFunc)   { c.Group.POST(path, ResolveEndpoint(h)) }
func (c *Controller) PUT(path string, h HandlerFunc)    { c.Group.PUT(path, ResolveEndpoint(h)) }
func (c *Controller) PATCH(path string, h HandlerFunc)  { c.Group.PATCH(path, ResolveEndpoint(h)) }
func (c *Controller) DELETE(path string, h HandlerFunc) { c.Group.DELETE(path, ResolveEndpoint(h)) }
