// Package admin exposes the session lifecycle over HTTP for the admin
// console.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/logger"
	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/session"
)

type Handler struct {
	sessions *session.Manager
}

func NewHandler(sessions *session.Manager) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/admin/login", h.Login)
	r.POST("/admin/logout", h.Logout)
	r.GET("/admin/session", h.Session)
	r.POST("/admin/session/extend", h.Extend)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ok, err := h.sessions.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Error("failed to persist session", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	logger.Info("admin login", map[string]any{
		"ip": c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{"status": "logged_in"})
}

func (h *Handler) Logout(c *gin.Context) {
	// Best-effort: a store failure still yields the idempotent response.
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		logger.Warn("logout failed", map[string]any{
			"error": err.Error(),
		})
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Session(c *gin.Context) {
	rec, err := h.sessions.GetSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	if rec == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *Handler) Extend(c *gin.Context) {
	if err := h.sessions.ExtendSession(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	c.Status(http.StatusNoContent)
}
