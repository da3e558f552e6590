package app

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mritunjay-thakur/clothify/internal/sdk/middleware"
	"github.com/mritunjay-thakur/clothify/internal/sdk/models"
	"github.com/mritunjay-thakur/clothify/internal/sdk/sqldb"
	"github.com/mritunjay-thakur/clothify/internal/services/avatar"
)

func (a *App) HandleSignup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, MsgInvalidBody)
		return
	}

	if req.Email == "" || req.Password == "" || req.FullName == "" {
		writeError(c, MsgAllFieldsRequired)
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(c, MsgPasswordTooShort)
		return
	}
	if !validEmail(req.Email) {
		writeError(c, MsgInvalidEmail)
		return
	}

	// Pre-check so a taken email yields a clean 400 instead of a store-level
	// uniqueness error.
	_, err := a.db.GetUserByEmail(c.Request.Context(), req.Email)
	if err == nil {
		writeError(c, MsgEmailExists)
		return
	}
	if !sqldb.IsNotFound(err) {
		a.internalError(c, "signup", "db_lookup", err)
		return
	}

	hashed, err := a.hash.Hash(req.Password)
	if err != nil {
		a.internalError(c, "signup", "hash", err)
		return
	}

	// The avatar seed is the email exactly as submitted; only the stored
	// email is lower-cased.
	user, err := a.db.CreateUser(c.Request.Context(), models.NewUser{
		Email:      strings.ToLower(req.Email),
		FullName:   strings.TrimSpace(req.FullName),
		Password:   hashed,
		ProfilePic: avatar.DefaultURL(req.Email),
		IsVerified: true,
	})
	if err != nil {
		if sqldb.IsDuplicateEntry(err) {
			writeError(c, MsgEmailExists)
			return
		}
		a.internalError(c, "signup", "db_create", err)
		return
	}

	tok, err := a.tokens.Issue(c.Request.Context(), user.ID)
	if err != nil {
		a.internalError(c, "signup", "token", err)
		return
	}
	a.cookies.Attach(c, tok)

	c.JSON(http.StatusCreated, UserResponse{
		Success: true,
		Message: "Account created successfully",
		User:    sanitizeUser(user),
	})
}

func (a *App) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, MsgInvalidBody)
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(c, MsgEmailPasswordRequired)
		return
	}

	user, err := a.db.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if sqldb.IsNotFound(err) {
			// Same message as a wrong password; no account enumeration.
			writeError(c, MsgInvalidCredentials)
			return
		}
		a.internalError(c, "login", "db", err)
		return
	}

	if !a.hash.Verify(req.Password, user.Password) {
		writeError(c, MsgInvalidCredentials)
		return
	}

	tok, err := a.tokens.Issue(c.Request.Context(), user.ID)
	if err != nil {
		a.internalError(c, "login", "token", err)
		return
	}
	a.cookies.Attach(c, tok)

	c.JSON(http.StatusOK, UserResponse{
		Success: true,
		Message: "Login successful",
		User:    sanitizeUser(user),
	})
}

// HandleLogout clears the session cookie. Idempotent: logging out without a
// session is still a success.
func (a *App) HandleLogout(c *gin.Context) {
	a.cookies.Clear(c)
	c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// HandleCheckAuth reports the session state. It never fails, whatever the
// cookie contains.
func (a *App) HandleCheckAuth(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, CheckAuthResponse{Success: true, IsAuthenticated: false})
		return
	}

	payload := sanitizeUser(user)
	c.JSON(http.StatusOK, CheckAuthResponse{
		Success:         true,
		IsAuthenticated: true,
		User:            &payload,
	})
}
