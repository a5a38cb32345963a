package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/frameloop/frameloop/internal/config"
	"github.com/frameloop/frameloop/internal/files"
	"github.com/frameloop/frameloop/internal/http/api"
	adminapi "github.com/frameloop/frameloop/internal/http/api/admin/endpoints"
	displayapi "github.com/frameloop/frameloop/internal/http/api/display/endpoints"
	"github.com/frameloop/frameloop/internal/http/middleware"
	"github.com/frameloop/frameloop/internal/schedule"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, store *schedule.Store, editor *schedule.Editor, library *files.Library) error {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	passwordHash, err := middleware.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		adminapi.AuthModule(cfg.JWTSecret, passwordHash),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: cfg.JWTSecret,
	},
		adminapi.ScheduleModule(store, editor, time.Now),
		adminapi.LibraryModule(library),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/display",
	},
		displayapi.ActiveModule(store, time.Now),
	)

	// Displays fetch the scheduled resources themselves.
	r.Static("/media", cfg.MediaDir)

	return nil
}
