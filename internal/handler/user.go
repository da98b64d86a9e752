package handler

import (
	"errors"
	"net/http"

	"github.com/Rajnish-J/todo-fast-api/internal/auth"
	"github.com/Rajnish-J/todo-fast-api/internal/middleware"
	"github.com/Rajnish-J/todo-fast-api/internal/util"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the current user's own profile operations.
type UserHandler struct {
	Users  auth.CredentialStore
	Hasher *auth.Hasher
}

func NewUserHandler(users auth.CredentialStore, hasher *auth.Hasher) *UserHandler {
	return &UserHandler{Users: users, Hasher: hasher}
}

// Me returns the caller's user record. The record is read fresh from
// the store; the token's role claim may be stale until re-login.
func (h *UserHandler) Me(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "could not validate user")
		return
	}

	user, err := h.Users.FindByID(identity.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "could not validate user")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch user")
		}
		return
	}

	util.Success(c, util.Response{"user": user})
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// ChangePassword verifies the old password before storing a hash of
// the new one. Already-issued tokens stay valid until expiry.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "could not validate user")
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	user, err := h.Users.FindByID(identity.UserID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch user")
		return
	}

	if !h.Hasher.Verify(req.OldPassword, user.PasswordHash) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "wrong password")
		return
	}

	hash, err := h.Hasher.Hash(req.NewPassword)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update password")
		return
	}
	if err := h.Users.UpdatePassword(user.ID, hash); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update password")
		return
	}

	util.Success(c, util.Response{"detail": "password updated"})
}
