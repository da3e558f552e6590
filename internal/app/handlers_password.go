package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mritunjay-thakur/clothify/internal/sdk/models"
	"github.com/mritunjay-thakur/clothify/internal/sdk/sqldb"
)

// HandleResetPassword sets a new password for the identified account.
// The caller supplies the user id directly; a token-based recovery flow
// would slot in front of this handler.
func (a *App) HandleResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, MsgInvalidBody)
		return
	}

	if len(req.NewPassword) < minPasswordLength {
		writeError(c, MsgPasswordTooShort)
		return
	}

	if _, err := uuid.Parse(req.UserID); err != nil {
		writeError(c, MsgUserNotFound)
		return
	}

	hashed, err := a.hash.Hash(req.NewPassword)
	if err != nil {
		a.internalError(c, "reset_password", "hash", err)
		return
	}

	if _, err := a.db.UpdateUser(c.Request.Context(), req.UserID, models.UserUpdate{Password: hashed}); err != nil {
		if sqldb.IsNotFound(err) {
			writeError(c, MsgUserNotFound)
			return
		}
		a.internalError(c, "reset_password", "db", err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Password reset successful",
	})
}
