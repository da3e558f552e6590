package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Client-facing messages. The existing frontend matches on the exact text,
// so these are part of the API contract. "Invalid email or password" is
// shared by the unknown-user and wrong-password cases on purpose: the two
// must be indistinguishable to prevent account enumeration.
const (
	MsgInvalidBody           = "Invalid request body"
	MsgAllFieldsRequired     = "All fields are required"
	MsgEmailPasswordRequired = "Email and password are required"
	MsgPasswordTooShort      = "Password must be at least 6 characters"
	MsgInvalidEmail          = "Invalid email format"
	MsgEmailExists           = "Email already exists"
	MsgEmailInUse            = "Email already in use"
	MsgInvalidCredentials    = "Invalid email or password"
	MsgUnauthorized          = "Unauthorized"
	MsgUserNotFound          = "User not found"
	MsgInvalidUpload         = "Invalid image upload"
	MsgInternalError         = "Internal server error"
)

// Email conflicts map to 400, not 409; the existing contract requires it.
var messageStatusMap = map[string]int{
	MsgInvalidBody:           http.StatusBadRequest,
	MsgAllFieldsRequired:     http.StatusBadRequest,
	MsgEmailPasswordRequired: http.StatusBadRequest,
	MsgPasswordTooShort:      http.StatusBadRequest,
	MsgInvalidEmail:          http.StatusBadRequest,
	MsgEmailExists:           http.StatusBadRequest,
	MsgEmailInUse:            http.StatusBadRequest,
	MsgInvalidCredentials:    http.StatusUnauthorized,
	MsgUnauthorized:          http.StatusUnauthorized,
	MsgUserNotFound:          http.StatusNotFound,
	MsgInvalidUpload:         http.StatusBadRequest,
	MsgInternalError:         http.StatusInternalServerError,
}

func statusForMessage(msg string) int {
	if status, ok := messageStatusMap[msg]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, msg string) {
	c.JSON(statusForMessage(msg), MessageResponse{Success: false, Message: msg})
}

// internalError reports the underlying failure and answers with the uniform
// 500 body; no internals leak to the caller.
func (a *App) internalError(c *gin.Context, handler, site string, err error) {
	a.sentry.CaptureHandlerError(handler, site, err)
	if a.logger != nil {
		a.logger.Error("handler failure",
			"handler", handler,
			"site", site,
			"error", err,
		)
	}
	writeError(c, MsgInternalError)
}
