package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frameloop/frameloop/internal/files"
	"github.com/frameloop/frameloop/internal/http/api"
	"github.com/frameloop/frameloop/internal/http/api/admin/packets"
)

// LibraryModule mounts the media-library endpoints the picker is built on:
// listing (image allowlist by default, ?all=true as the escape hatch) and
// multipart upload.
func LibraryModule(library *files.Library) api.Module {
	ctl := &LibraryController{library: library}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/library/files", ctl.listFiles)
		c.POST("/library/files", ctl.uploadFile)
		// raw file response, so it bypasses the JSON envelope
		c.Group.GET("/library/files/preview", ctl.previewFile)
	})
}

type LibraryController struct {
	library *files.Library
}

// GET /api/admin/library/files?all=true
func (l *LibraryController) listFiles(ctx *gin.Context) (any, *api.APIError) {
	includeAll := ctx.Query("all") == "true"
	names, err := l.library.List(includeAll)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list library"}
	}
	return packets.FileListResponse{Files: names}, nil
}

// POST /api/admin/library/files (multipart field "file")
func (l *LibraryController) uploadFile(ctx *gin.Context) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing file"}
	}

	name, err := l.library.SaveFile(fileHeader)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	}
	return gin.H{"file": name}, nil
}

// GET /api/admin/library/files/preview?name=...
func (l *LibraryController) previewFile(ctx *gin.Context) {
	full, err := l.library.Resolve(ctx.Query("name"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	ctx.File(full)
}
