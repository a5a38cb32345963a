package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/frameloop/frameloop/internal/http/api"
	"github.com/frameloop/frameloop/internal/http/api/admin/packets"
	"github.com/frameloop/frameloop/internal/http/middleware"
)

// AuthModule mounts the public login endpoint. There is a single admin
// credential; a successful login issues a session JWT for the protected
// group.
func AuthModule(jwtSecret, passwordHash string) api.Module {
	ctl := &AuthController{jwtSecret: jwtSecret, passwordHash: passwordHash}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/auth/login", ctl.login)
	})
}

type AuthController struct {
	jwtSecret    string
	passwordHash string
}

// POST /api/admin/auth/login
func (a *AuthController) login(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if !middleware.CheckPassword(a.passwordHash, request.Password) {
		log.Warn().Msg("admin login with wrong password")
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: middleware.ErrInvalidCredentials.Error()}
	}

	token, err := middleware.GenerateJWT(a.jwtSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return gin.H{"token": token}, nil
}
