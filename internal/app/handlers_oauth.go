package app

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mritunjay-thakur/clothify/internal/sdk/models"
	"github.com/mritunjay-thakur/clothify/internal/sdk/sqldb"
	"github.com/mritunjay-thakur/clothify/internal/services/avatar"
)

// HandleGoogleBegin starts the Google OAuth handshake.
func (a *App) HandleGoogleBegin(c *gin.Context) {
	if !a.google.Enabled() {
		a.redirectLoginError(c, "Google sign-in is not configured")
		return
	}
	a.google.Begin(c)
}

// HandleGoogleCallback completes the handshake, provisioning an account on
// first sign-in, then issues the same session cookie the password flow uses.
// Failures surface to the frontend as a login redirect, never a JSON body.
func (a *App) HandleGoogleCallback(c *gin.Context) {
	if !a.google.Enabled() {
		a.redirectLoginError(c, "Google sign-in is not configured")
		return
	}

	gu, err := a.google.Complete(c)
	if err != nil {
		a.redirectLoginError(c, err.Error())
		return
	}
	if gu.Email == "" {
		a.redirectLoginError(c, "No user data received from Google")
		return
	}

	user, err := a.db.GetUserByEmail(c.Request.Context(), gu.Email)
	switch {
	case sqldb.IsNotFound(err):
		user, err = a.provisionGoogleUser(c, gu.Email, gu.Name, gu.AvatarURL)
		if err != nil {
			a.sentry.CaptureHandlerError("google_callback", "provision", err)
			a.logger.Error("google provisioning failed", "error", err)
			a.redirectLoginError(c, MsgInternalError)
			return
		}
	case err != nil:
		a.sentry.CaptureHandlerError("google_callback", "db", err)
		a.logger.Error("google lookup failed", "error", err)
		a.redirectLoginError(c, MsgInternalError)
		return
	}

	token, err := a.tokens.Issue(c.Request.Context(), user.ID)
	if err != nil {
		a.sentry.CaptureHandlerError("google_callback", "token", err)
		a.logger.Error("google token issue failed", "error", err)
		a.redirectLoginError(c, MsgInternalError)
		return
	}
	a.cookies.Attach(c, token)

	c.Redirect(http.StatusFound, a.cfg.App.FrontendURL+"/clothify?auth=success&source=google")
}

func (a *App) provisionGoogleUser(c *gin.Context, email, name, picture string) (models.User, error) {
	// Password-login stays possible in principle but the credential is
	// unguessable until the user runs a reset.
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return models.User{}, err
	}
	hashed, err := a.hash.Hash(hex.EncodeToString(buf))
	if err != nil {
		return models.User{}, err
	}

	if name == "" {
		name = strings.Split(email, "@")[0]
	}
	if picture == "" {
		picture = avatar.DefaultURL(email)
	}

	return a.db.CreateUser(c.Request.Context(), models.NewUser{
		Email:      email,
		FullName:   name,
		Password:   hashed,
		ProfilePic: picture,
		IsVerified: true,
	})
}

func (a *App) redirectLoginError(c *gin.Context, msg string) {
	c.Redirect(http.StatusFound,
		a.cfg.App.FrontendURL+"/login?error=true&message="+url.QueryEscape(msg))
}
