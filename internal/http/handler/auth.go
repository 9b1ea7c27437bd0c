package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mindhaven.app/server/core/config"
	"mindhaven.app/server/internal/http/dto"
	"mindhaven.app/server/internal/http/middleware"
	"mindhaven.app/server/internal/service"
)

// AuthHandler serves hosted-provider login.
type AuthHandler struct {
	auth service.AuthService
	cfg  config.Config
}

func NewAuthHandler(auth service.AuthService, cfg config.Config) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg}
}

// Login handles GET /auth/login and redirects to the hosted sign-in page.
func (h *AuthHandler) Login(c *gin.Context) {
	url, err := h.auth.GetAuthorizationURL(c.Query("state"))
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to build authorization URL", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start login"})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// Callback handles GET /auth/callback.
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	_, session, err := h.auth.HandleCallback(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, strconv.FormatInt(session.ID, 10),
		int(session.ExpiresAt.Sub(session.CreatedAt).Seconds()), "/", "", h.cfg.IsProduction(), true)
	c.Redirect(http.StatusTemporaryRedirect, h.cfg.FrontendURL)
}

// Me handles GET /auth/me for the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, ok := middleware.GetSessionID(c); ok {
		if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
			slog.WarnContext(c.Request.Context(), "failed to delete session", "error", err)
		}
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cfg.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
