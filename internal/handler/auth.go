package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/Rajnish-J/todo-fast-api/internal/auth"
	"github.com/Rajnish-J/todo-fast-api/internal/models"
	"github.com/Rajnish-J/todo-fast-api/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration and token issuance.
type AuthHandler struct {
	Users         auth.CredentialStore
	Hasher        *auth.Hasher
	Authenticator *auth.Authenticator
}

func NewAuthHandler(users auth.CredentialStore, hasher *auth.Hasher, authenticator *auth.Authenticator) *AuthHandler {
	return &AuthHandler{
		Users:         users,
		Hasher:        hasher,
		Authenticator: authenticator,
	}
}

// ---------- registration ----------

type registerReq struct {
	Email     string `json:"email" binding:"required,email,max=50"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"max=15"`
	LastName  string `json:"last_name" binding:"max=15"`
	Password  string `json:"password" binding:"required,min=8,max=64"`
	Role      string `json:"role" binding:"max=15"`
}

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if !usernameRe.MatchString(req.Username) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username must be 3-30 letters, digits or underscores")
		return
	}

	if _, err := h.Users.FindByUsername(req.Username); err == nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "username already taken")
		return
	} else if !errors.Is(err, auth.ErrNotFound) {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create user")
		return
	}

	hash, err := h.Hasher.Hash(req.Password)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create user")
		return
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = "user"
	}

	user := models.User{
		Email:        strings.TrimSpace(req.Email),
		Username:     req.Username,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: hash,
		IsActive:     true,
		Role:         role,
	}
	if err := h.Users.Create(&user); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create user")
		return
	}

	util.Created(c, util.Response{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"role":       user.Role,
			"is_active":  user.IsActive,
		},
	})
}

// ---------- token issuance ----------

// tokenReq is form-encoded, mirroring the OAuth2 password flow shape.
type tokenReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Token exchanges a username/password pair for a bearer token.
// Unknown username and wrong password produce the same 400 response.
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenReq
	if err := c.ShouldBind(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid username or password")
		return
	}

	token, err := h.Authenticator.Login(strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid username or password")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to issue token")
		}
		return
	}

	util.Success(c, util.Response{
		"access_token": token,
		"token_type":   "bearer",
	})
}
