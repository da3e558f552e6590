package app

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mritunjay-thakur/clothify/internal/sdk/middleware"
	"github.com/mritunjay-thakur/clothify/internal/sdk/models"
	"github.com/mritunjay-thakur/clothify/internal/sdk/sqldb"
	"github.com/mritunjay-thakur/clothify/internal/services/avatar"
)

// HandleEditProfile applies any subset of {newName, newEmail, newPassword,
// deleteAccount}. deleteAccount short-circuits everything else. Field checks
// happen before the single store write, so a rejected field leaves the
// record untouched.
func (a *App) HandleEditProfile(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, MsgUnauthorized)
		return
	}

	var req EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, MsgInvalidBody)
		return
	}

	user, err := a.db.GetUserByID(c.Request.Context(), current.ID)
	if err != nil {
		if sqldb.IsNotFound(err) {
			writeError(c, MsgUserNotFound)
			return
		}
		a.internalError(c, "edit_profile", "db_lookup", err)
		return
	}

	if req.DeleteAccount {
		if err := a.db.DeleteUser(c.Request.Context(), user.ID); err != nil {
			if sqldb.IsNotFound(err) {
				writeError(c, MsgUserNotFound)
				return
			}
			a.internalError(c, "edit_profile", "db_delete", err)
			return
		}
		// The session cookie dies with the account, in the same response.
		a.cookies.Clear(c)
		c.JSON(http.StatusOK, MessageResponse{
			Success: true,
			Message: "Account deleted successfully",
		})
		return
	}

	var update models.UserUpdate

	if req.NewEmail != "" && strings.ToLower(req.NewEmail) != user.Email {
		_, err := a.db.GetUserByEmail(c.Request.Context(), req.NewEmail)
		if err == nil {
			writeError(c, MsgEmailInUse)
			return
		}
		if !sqldb.IsNotFound(err) {
			a.internalError(c, "edit_profile", "db_email_lookup", err)
			return
		}
		if !validEmail(req.NewEmail) {
			writeError(c, MsgInvalidEmail)
			return
		}

		email := strings.ToLower(req.NewEmail)
		pic := avatar.DefaultURL(req.NewEmail)
		update.Email = &email
		update.ProfilePic = &pic
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < minPasswordLength {
			writeError(c, MsgPasswordTooShort)
			return
		}
		hashed, err := a.hash.Hash(req.NewPassword)
		if err != nil {
			a.internalError(c, "edit_profile", "hash", err)
			return
		}
		update.Password = hashed
	}

	if req.NewName != "" {
		name := strings.TrimSpace(req.NewName)
		update.FullName = &name
	}

	updated, err := a.db.UpdateUser(c.Request.Context(), user.ID, update)
	if err != nil {
		switch {
		case sqldb.IsDuplicateEntry(err):
			writeError(c, MsgEmailInUse)
		case sqldb.IsNotFound(err):
			writeError(c, MsgUserNotFound)
		default:
			a.internalError(c, "edit_profile", "db_update", err)
		}
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    sanitizeUser(updated),
	})
}

func (a *App) HandleGetCurrentUser(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, MsgUnauthorized)
		return
	}

	user, err := a.db.GetUserByID(c.Request.Context(), current.ID)
	if err != nil {
		if sqldb.IsNotFound(err) {
			writeError(c, MsgUserNotFound)
			return
		}
		a.internalError(c, "get_current_user", "db", err)
		return
	}

	c.JSON(http.StatusOK, CurrentUserResponse{
		Success: true,
		User: CurrentUserPayload{
			UserPayload: sanitizeUser(user),
			CreatedAt:   user.CreatedAt,
		},
	})
}

// HandleUploadAvatar replaces the profile picture with an uploaded image.
// A later email change regenerates the default avatar over it.
func (a *App) HandleUploadAvatar(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		writeError(c, MsgUnauthorized)
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		writeError(c, MsgInvalidUpload)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, MsgInvalidUpload)
		return
	}
	defer file.Close()

	url, err := a.avatars.Upload(c.Request.Context(), current.ID, file)
	if err != nil {
		if errors.Is(err, avatar.ErrInvalidImage) {
			writeError(c, MsgInvalidUpload)
			return
		}
		a.internalError(c, "upload_avatar", "storage", err)
		return
	}

	updated, err := a.db.UpdateUser(c.Request.Context(), current.ID, models.UserUpdate{ProfilePic: &url})
	if err != nil {
		if sqldb.IsNotFound(err) {
			writeError(c, MsgUserNotFound)
			return
		}
		a.internalError(c, "upload_avatar", "db", err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		Success: true,
		Message: "Profile picture updated successfully",
		User:    sanitizeUser(updated),
	})
}
