// Package middleware provides gin middleware shared across route groups.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mritunjay-thakur/clothify/internal/sdk/models"
	"github.com/mritunjay-thakur/clothify/internal/sdk/sqldb"
	"github.com/mritunjay-thakur/clothify/internal/services/session"
	"github.com/mritunjay-thakur/clothify/internal/services/token"
)

const userKey = "currentUser"

// RequireAuth verifies the session cookie and attaches the authenticated
// user to the context. Missing, malformed, expired and mis-signed tokens all
// collapse to the same 401; the client learns nothing beyond "unauthorized".
func RequireAuth(tokens *token.TokenService, cookies *session.Manager, db sqldb.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, tokens, cookies, db)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// Identify resolves the session user when present but never rejects the
// request; the auth probe endpoint depends on it.
func Identify(tokens *token.TokenService, cookies *session.Manager, db sqldb.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c, tokens, cookies, db); ok {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth or Identify.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get(userKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

func resolveUser(c *gin.Context, tokens *token.TokenService, cookies *session.Manager, db sqldb.Service) (models.User, bool) {
	tok := cookies.Token(c)
	if tok == "" {
		return models.User{}, false
	}

	userID, err := tokens.Verify(c.Request.Context(), tok)
	if err != nil {
		return models.User{}, false
	}

	user, err := db.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		return models.User{}, false
	}

	return user, true
}
