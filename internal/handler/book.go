package handler

import (
	"errors"
	"net/http"

	"github.com/Rajnish-J/todo-fast-api/internal/auth"
	"github.com/Rajnish-J/todo-fast-api/internal/models"
	"github.com/Rajnish-J/todo-fast-api/internal/store"
	"github.com/Rajnish-J/todo-fast-api/internal/util"

	"github.com/gin-gonic/gin"
)

// BookHandler serves the shared book catalog. Reads are public, writes
// require a logged-in user.
type BookHandler struct {
	Books store.BookStore
}

func NewBookHandler(books store.BookStore) *BookHandler {
	return &BookHandler{Books: books}
}

type bookReq struct {
	Title       string `json:"title" binding:"required,min=2,max=80"`
	Author      string `json:"author" binding:"required,min=2,max=40"`
	Description string `json:"description" binding:"omitempty,min=2,max=200"`
	Category    string `json:"category" binding:"required,min=2,max=40"`
	Rating      int    `json:"rating" binding:"required,gte=1,lte=5"`
}

// List returns the catalog, optionally filtered by ?category=.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.Books.List(c.Query("category"))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list books")
		return
	}
	util.Success(c, util.Response{"books": books})
}

func (h *BookHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid book id")
		return
	}

	book, err := h.Books.Find(id)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "book not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch book")
		}
		return
	}

	util.Success(c, util.Response{"book": book})
}

func (h *BookHandler) Create(c *gin.Context) {
	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	book := models.Book{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Category:    req.Category,
		Rating:      req.Rating,
	}
	if err := h.Books.Create(&book); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save book")
		return
	}

	util.Created(c, util.Response{"book": book})
}

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid book id")
		return
	}

	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	book, err := h.Books.Find(id)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "book not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to fetch book")
		}
		return
	}

	book.Title = req.Title
	book.Author = req.Author
	book.Description = req.Description
	book.Category = req.Category
	book.Rating = req.Rating

	if err := h.Books.Update(book); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save book")
		return
	}

	util.Success(c, util.Response{"book": book})
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid book id")
		return
	}

	if err := h.Books.Delete(id); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "book not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete book")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
