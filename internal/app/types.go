package app

import (
	"time"

	"github.com/mritunjay-thakur/clothify/internal/sdk/models"
)

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EditProfileRequest carries an arbitrary subset of mutations. DeleteAccount
// takes precedence over every other field.
type EditProfileRequest struct {
	NewName       string `json:"newName"`
	NewEmail      string `json:"newEmail"`
	NewPassword   string `json:"newPassword"`
	DeleteAccount bool   `json:"deleteAccount"`
}

type ResetPasswordRequest struct {
	UserID      string `json:"userId"`
	NewPassword string `json:"newPassword"`
}

// UserPayload is the sanitized user shape: no password hash, no internal
// fields.
type UserPayload struct {
	ID         string `json:"_id"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	ProfilePic string `json:"profilePic"`
}

type CurrentUserPayload struct {
	UserPayload
	CreatedAt time.Time `json:"createdAt"`
}

type UserResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CurrentUserResponse struct {
	Success bool               `json:"success"`
	User    CurrentUserPayload `json:"user"`
}

type CheckAuthResponse struct {
	Success         bool         `json:"success"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *UserPayload `json:"user,omitempty"`
}

func sanitizeUser(u models.User) UserPayload {
	return UserPayload{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		ProfilePic: u.ProfilePic,
	}
}
