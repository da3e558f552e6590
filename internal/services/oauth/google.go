// Package oauth wraps the Google identity provider handshake. The handshake
// state rides its own server-side session cookie, separate from the jwt
// session cookie.
package oauth

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"

	"github.com/mritunjay-thakur/clothify/internal/config"
)

const providerName = "google"

type Google struct {
	enabled bool
}

// Setup registers the Google provider and the session store used for the
// handshake. With no client ID configured the OAuth routes stay mounted but
// fail into the error-redirect path.
func Setup(cfg config.OAuthConfig, secret string, production bool) *Google {
	if cfg.GoogleClientID == "" {
		return &Google{}
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(int((7 * 24 * time.Hour).Seconds()))
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = production
	gothic.Store = store

	goth.UseProviders(google.New(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleCallbackURL,
		"email", "profile",
	))

	return &Google{enabled: true}
}

func (g *Google) Enabled() bool {
	return g.enabled
}

// Begin redirects the client to the Google consent screen.
func (g *Google) Begin(c *gin.Context) {
	withProvider(c)
	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// Complete finishes the handshake after Google redirects back and returns
// the authenticated identity.
func (g *Google) Complete(c *gin.Context) (goth.User, error) {
	withProvider(c)
	return gothic.CompleteUserAuth(c.Writer, c.Request)
}

// withProvider pins the provider name into the request query; gothic reads
// it from there.
func withProvider(c *gin.Context) {
	q := c.Request.URL.Query()
	q.Set("provider", providerName)
	c.Request.URL.RawQuery = q.Encode()
}
