package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/authz"
	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/kv"
	"github.com/AbdulLatif1718/farmsmart-haven-sub002/internal/logger"
)

// Guard gates app routes on the ambient login flag and role tag. Those
// keys are written by the login flows, not by the guard; the guard only
// reads them and applies the route policy.
type Guard struct {
	store        kv.Store
	roleKey      string
	loginFlagKey string
}

func NewGuard(store kv.Store, roleKey, loginFlagKey string) *Guard {
	return &Guard{
		store:        store,
		roleKey:      roleKey,
		loginFlagKey: loginFlagKey,
	}
}

// Require evaluates the route policy before the handler runs and issues
// a 302 to the policy's target on deny.
func (g *Guard) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		loggedIn, role := g.state(c.Request.Context())

		decision := authz.Decide(loggedIn, role, c.Request.URL.Path)
		if !decision.Allow {
			c.Redirect(http.StatusFound, decision.Target)
			c.Abort()
			return
		}

		c.Next()
	}
}

type checkRequest struct {
	Path string `json:"path" binding:"required"`
}

// Check exposes the route policy to the web client's router: it answers
// a path query with the decision the guard would make.
func (g *Guard) Check() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
			return
		}

		loggedIn, role := g.state(c.Request.Context())

		decision := authz.Decide(loggedIn, role, req.Path)
		if decision.Allow {
			c.JSON(http.StatusOK, gin.H{"decision": "allow"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"decision": "redirect",
			"target":   decision.Target,
		})
	}
}

// state reads the ambient keys. A store failure degrades to logged-out,
// which the policy turns into a redirect to the landing page.
func (g *Guard) state(ctx context.Context) (bool, authz.Role) {
	flag, ok, err := g.store.Get(ctx, g.loginFlagKey)
	if err != nil {
		logger.Warn("login flag read failed", map[string]any{
			"error": err.Error(),
		})
		return false, authz.RoleFarmer
	}
	loggedIn := ok && flag == "true"

	tag, _, err := g.store.Get(ctx, g.roleKey)
	if err != nil {
		logger.Warn("role read failed", map[string]any{
			"error": err.Error(),
		})
		tag = ""
	}

	return loggedIn, authz.ParseRole(tag)
}
