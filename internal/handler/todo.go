package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Rajnish-J/todo-fast-api/internal/auth"
	"github.com/Rajnish-J/todo-fast-api/internal/middleware"
	"github.com/Rajnish-J/todo-fast-api/internal/models"
	"github.com/Rajnish-J/todo-fast-api/internal/store"
	"github.com/Rajnish-J/todo-fast-api/internal/util"

	"github.com/gin-gonic/gin"
)

// TodoHandler serves the per-user todo CRUD surface. Every lookup for
// a non-admin caller is owner-constrained at query time; an
// absent-or-not-owned id is always reported as not found.
type TodoHandler struct {
	Todos    store.TodoStore
	PageSize int
}

func NewTodoHandler(todos store.TodoStore, pageSize int) *TodoHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &TodoHandler{Todos: todos, PageSize: pageSize}
}

type todoReq struct {
	Title       string `json:"title" binding:"required,min=3,max=100"`
	Description string `json:"description" binding:"required,min=3,max=100"`
	Priority    int    `json:"priority" binding:"required,gte=1,lte=5"`
	Complete    bool   `json:"complete"`
}

// pathID parses the :id parameter as a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// List returns the caller's todos, paginated.
func (h *TodoHandler) List(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "could not validate user")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.PageSize)))
	if size <= 0 || size > 100 {
		size = h.PageSize
	}

	todos, err := h.Todos.ListOwned(identity.UserID, (page-1)*size, size)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list todos")
		return
	}

	util.Success(c, util.Response{
		"todos":     todos,
		"page":      page,
		"page_size": size,
	})
}

// Get returns one todo. Admin callers may read any todo by id; others
// only their own.
func (h *TodoHandler) Get(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "could not validate user")
		return
	}

	id, ok := pathID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid todo id")
		return
	}

	var (
		todo *models.Todo
		err  error
	)
	if identity.IsAdmin() {
		todo, err = h.Todos.FindAny(id)
	} else {
		todo, err = h.Todos.FindOwned(id, identity.UserID)
	}
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "todo not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch todo")
		}
		return
	}

	util.Success(c, util.Response{"todo": todo})
}

// Create stores a new todo owned by the caller.
func (h *TodoHandler) Create(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "could not validate user")
		return
	}

	var req todoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	todo := models.Todo{
		UserID:      identity.UserID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	}
	if err := h.Todos.Create(&todo); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save todo")
		return
	}

	util.Created(c, util.Response{"todo": todo})
}

// Update rewrites the caller's todo. The ownership check runs inside
// the update statement itself, never against a cached earlier lookup.
func (h *TodoHandler) Update(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "could not validate user")
		return
	}

	id, ok := pathID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid todo id")
		return
	}

	var req todoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	todo, err := h.Todos.UpdateOwned(id, identity.UserID, map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"priority":    req.Priority,
		"complete":    req.Complete,
	})
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "todo not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save todo")
		}
		return
	}

	util.Success(c, util.Response{"todo": todo})
}

// Delete removes the caller's todo.
func (h *TodoHandler) Delete(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "could not validate user")
		return
	}

	id, ok := pathID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid todo id")
		return
	}

	if err := h.Todos.DeleteOwned(id, identity.UserID); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "todo not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete todo")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
