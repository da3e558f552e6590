package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditProfile(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPut, "/api/auth/edit-profile", gin.H{"newName": "X"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, MsgUnauthorized, decodeBody(t, w)["message"])
	})

	t.Run("updates name", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedUser(t, "jo@b.com", "secret1", "Jo")
		cookie := env.login(t, "jo@b.com", "secret1")

		w := env.do(t, http.MethodPut, "/api/auth/edit-profile",
			gin.H{"newName": "  Joanna  "}, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Profile updated successfully", body["message"])
		assert.Equal(t, "Joanna", body["user"].(map[string]any)["fullName"])
	})

	t.Run("email change regenerates avatar", func(t *testing.T) {
		env := newTestEnv(t)
		seeded := env.seedUser(t, "jo@b.com", "secret1", "Jo")
		cookie := env.login(t, "jo@b.com", "secret1")

		w := env.do(t, http.MethodPut, "/api/auth/edit-profile",
			gin.H{"newEmail": "New@B.com"}, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		user := decodeBody(t, w)["user"].(map[string]any)
		assert.Equal(t, "new@b.com", user["email"])
		assert.Equal(t, "https://api.dicebear.com/9.x/avataaars/svg?seed=New@B.com", user["profilePic"])

		// The session survives an email change.
		w = env.do(t, http.MethodGet, "/api/auth/me", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		_, err := env.store.GetUserByID(context.Background(), seeded.ID)
		require.NoError(t, err)
	})

	t.Run("same email in different case is a no-op change", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedUser(t, "jo@b.com", "secret1", "Jo")
		cookie := env.login(t, "jo@b.com", "secret1")

		w := env.do(t, http.MethodPut, "/api/auth/edit-profile",
			gin.H{"newEmail": "JO@B.com"}, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		user := decodeBody(t, w)["user"].(map[string]any)
		assert.Equal(t, "jo@b.com", user["email"])
	})

	t.Run("rejects email of another account case-insensitively", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedUser(t, "jo@b.com", "secret1", "Jo")
		env.seedUser(t, "taken@b.com", "secret1", "Other")
		cookie := env.login(t, "jo@b.com", "secret1")

		w := env.do(t, http.MethodPut, "/api/auth/edit-profile",
			gin.H{"newEmail": "TAKEN@b.com"}, cookie)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, MsgEmailInUse, decodeBody(t, w)["message"])
	})

	t.Run("released email can be taken back", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedUser(t, "jo@b.com", "secret1", "Jo")
		cookie := env.login(t, "jo@b.com", "secret1")

		w := env.do(t, http.MethodPut, "/api/auth/edit-profile",
			gin.H{"newEmail": "other@b.com"}, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodPut, "/api/auth/edit-profile",
			gin.H{"newEmail": "jo@b.com"}, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "jo@b.com", decodeBody(t, w)["user"].(map[string]any)["email"])
	})

	t.Run("short password leaves the record untouched", func(t *testing.T) {
		env := newTestEnv(t)
		seeded := env.seedUser(t, "jo@b.com", "secret1", "Jo")
		cookie := env.login(t, "jo@b.com", "secret1")

		w := env.do(t, http.MethodPut, "/api/auth/edit-profile",
			gin.H{"newName": "Changed", "newPassword": "12345"}, cookie)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, MsgPasswordTooShort, decodeBody(t, w)["message"])

		stored, err := env.store.GetUserByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jo", stored.FullName)
		assert.True(t, env.hash.Verify("secret1", stored.Password))
	})

	t.Run("password change takes effect", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedUser(t, "jo@b.com", "secret1", "Jo")
		cookie := env.login(t, "jo@b.com", "secret1")

		w := env.do(t, http.MethodPut, "/api/auth/edit-profile",
			gin.H{"newPassword": "brand-new"}, cookie)
		require.Equal(t, http.StatusOK, w.Code)

		env.login(t, "jo@b.com", "brand-new")
		old := env.do(t, http.MethodPost, "/api/auth/login",
			gin.H{"email": "jo@b.com", "password": "secret1"})
		assert.Equal(t, http.StatusUnauthorized, old.Code)
	})

	t.Run("delete account wins over other fields", func(t *testing.T) {
		env := newTestEnv(t)
		seeded := env.seedUser(t, "jo@b.com", "secret1", "Jo")
		cookie := env.login(t, "jo@b.com", "secret1")

		w := env.do(t, http.MethodPut, "/api/auth/edit-profile",
			gin.H{"deleteAccount": true, "newName": "Ignored"}, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Account deleted successfully", decodeBody(t, w)["message"])

		cleared := sessionCookie(w.Result())
		require.NotNil(t, cleared)
		assert.Equal(t, -1, cleared.MaxAge)

		_, err := env.store.GetUserByID(context.Background(), seeded.ID)
		require.Error(t, err)

		// The now-dead session no longer passes the auth gate.
		w = env.do(t, http.MethodGet, "/api/auth/me", nil, cookie)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetCurrentUser(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodGet, "/api/auth/me", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns the profile with createdAt", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedUser(t, "jo@b.com", "secret1", "Jo")
		cookie := env.login(t, "jo@b.com", "secret1")

		w := env.do(t, http.MethodGet, "/api/auth/me", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		user := decodeBody(t, w)["user"].(map[string]any)
		assert.Equal(t, "jo@b.com", user["email"])
		assert.Equal(t, "Jo", user["fullName"])
		assert.NotEmpty(t, user["createdAt"])
		assert.NotContains(t, user, "password")
	})
}

func TestUploadAvatar(t *testing.T) {
	t.Run("requires a session", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/api/auth/avatar", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a request without a file", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedUser(t, "jo@b.com", "secret1", "Jo")
		cookie := env.login(t, "jo@b.com", "secret1")

		w := env.do(t, http.MethodPost, "/api/auth/avatar", nil, cookie)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, MsgInvalidUpload, decodeBody(t, w)["message"])
	})
}

func TestResetPassword(t *testing.T) {
	t.Run("resets by user id", func(t *testing.T) {
		env := newTestEnv(t)
		seeded := env.seedUser(t, "jo@b.com", "secret1", "Jo")

		w := env.do(t, http.MethodPost, "/api/auth/reset-password",
			gin.H{"userId": seeded.ID, "newPassword": "fresh-pass"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Password reset successful", decodeBody(t, w)["message"])

		env.login(t, "jo@b.com", "fresh-pass")
	})

	t.Run("rejects short password", func(t *testing.T) {
		env := newTestEnv(t)
		seeded := env.seedUser(t, "jo@b.com", "secret1", "Jo")

		w := env.do(t, http.MethodPost, "/api/auth/reset-password",
			gin.H{"userId": seeded.ID, "newPassword": "12345"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, MsgPasswordTooShort, decodeBody(t, w)["message"])
	})

	t.Run("unknown and malformed ids both answer 404", func(t *testing.T) {
		env := newTestEnv(t)

		for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
			w := env.do(t, http.MethodPost, "/api/auth/reset-password",
				gin.H{"userId": id, "newPassword": "fresh-pass"})
			require.Equal(t, http.StatusNotFound, w.Code, id)
			assert.Equal(t, MsgUserNotFound, decodeBody(t, w)["message"], id)
		}
	})
}
