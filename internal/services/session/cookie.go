// Package session manages the HTTP cookie that carries the session token.
package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieName is the fixed name of the session cookie. The existing frontend
// build depends on it.
const CookieName = "jwt"

// Manager sets and clears the session cookie with environment-dependent
// security attributes: production uses Secure + SameSite=None (the frontend
// may be served cross-site), anything else uses SameSite=Lax without Secure
// so local development over plain HTTP works.
type Manager struct {
	maxAge   time.Duration
	secure   bool
	sameSite http.SameSite
}

func NewManager(maxAge time.Duration, production bool) *Manager {
	m := &Manager{
		maxAge:   maxAge,
		secure:   false,
		sameSite: http.SameSiteLaxMode,
	}
	if production {
		m.secure = true
		m.sameSite = http.SameSiteNoneMode
	}
	return m
}

// Attach sets the session cookie on the response.
func (m *Manager) Attach(c *gin.Context, token string) {
	c.SetSameSite(m.sameSite)
	c.SetCookie(CookieName, token, int(m.maxAge.Seconds()), "/", "", m.secure, true)
}

// Clear removes the session cookie. The attributes must match the ones used
// by Attach (apart from value and max age), or some clients silently keep
// the cookie.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(m.sameSite)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}

// Token reads the session token from the request cookie. Returns an empty
// string when the cookie is absent.
func (m *Manager) Token(c *gin.Context) string {
	tok, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return tok
}
