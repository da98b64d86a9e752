package handler

import (
	"errors"
	"net/http"

	"github.com/Rajnish-J/todo-fast-api/internal/auth"
	"github.com/Rajnish-J/todo-fast-api/internal/store"
	"github.com/Rajnish-J/todo-fast-api/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves routes gated by middleware.RequireAdmin. Lookups
// here are unconstrained by owner, but nonexistent ids still return
// not found.
type AdminHandler struct {
	Todos store.TodoStore
	Users auth.CredentialStore
}

func NewAdminHandler(todos store.TodoStore, users auth.CredentialStore) *AdminHandler {
	return &AdminHandler{Todos: todos, Users: users}
}

// ListTodos returns every todo regardless of owner.
func (h *AdminHandler) ListTodos(c *gin.Context) {
	todos, err := h.Todos.ListAll()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list todos")
		return
	}
	util.Success(c, util.Response{"todos": todos})
}

// DeleteTodo removes any user's todo by id.
func (h *AdminHandler) DeleteTodo(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid todo id")
		return
	}

	if err := h.Todos.DeleteAny(id); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "todo not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete todo")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetUser returns a user record by id.
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid user id")
		return
	}

	user, err := h.Users.FindByID(id)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "user not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch user")
		}
		return
	}

	util.Success(c, util.Response{"user": user})
}
