package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the body of a successful reply.
type Response map[string]interface{}

// Business error codes carried alongside the HTTP status.
const (
	CodeInvalidParam = 40001
	CodeAuth         = 40101
	CodeNotFound     = 40401
	CodeServerErr    = 50001
)

// Success writes data as a 200 response.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, data)
}

// Created writes data as a 201 response.
func Created(c *gin.Context, data Response) {
	c.JSON(http.StatusCreated, data)
}

// Error writes a uniform error body. Messages stay generic; internal
// detail never reaches the client.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":   code,
		"detail": msg,
	})
}
