package router

import (
	"time"

	"github.com/Rajnish-J/todo-fast-api/internal/auth"
	"github.com/Rajnish-J/todo-fast-api/internal/config"
	"github.com/Rajnish-J/todo-fast-api/internal/handler"
	"github.com/Rajnish-J/todo-fast-api/internal/middleware"
	"github.com/Rajnish-J/todo-fast-api/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires stores, the auth core and handlers into a Gin
// engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	users := store.NewUserStore(db)
	todos := store.NewTodoStore(db)
	books := store.NewBookStore(db)

	codec := auth.NewTokenCodec(cfg.JWT.Secret, cfg.JWT.Issuer)
	hasher := auth.NewHasher(cfg.Security.BcryptCost)
	ttl := time.Duration(cfg.JWT.ExpireMinutes) * time.Minute
	authenticator := auth.NewAuthenticator(users, hasher, codec, ttl)
	resolver := auth.NewResolver(codec)

	// public routes
	authHandler := handler.NewAuthHandler(users, hasher, authenticator)
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/token", authHandler.Token)

	bookHandler := handler.NewBookHandler(books)
	r.GET("/books", bookHandler.List)
	r.GET("/books/:id", bookHandler.Get)

	// routes requiring a valid bearer token
	protected := r.Group("")
	protected.Use(
		middleware.RequireAuth(resolver),
		middleware.Audit(db),
	)

	userHandler := handler.NewUserHandler(users, hasher)
	protected.GET("/users/me", userHandler.Me)
	protected.PUT("/users/me/password", userHandler.ChangePassword)

	todoHandler := handler.NewTodoHandler(todos, cfg.App.PageSize)
	protected.GET("/todos", todoHandler.List)
	protected.GET("/todos/:id", todoHandler.Get)
	protected.POST("/todos", todoHandler.Create)
	protected.PUT("/todos/:id", todoHandler.Update)
	protected.DELETE("/todos/:id", todoHandler.Delete)

	exportHandler := handler.NewExportHandler(todos)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	protected.POST("/books", bookHandler.Create)
	protected.PUT("/books/:id", bookHandler.Update)
	protected.DELETE("/books/:id", bookHandler.Delete)

	// admin-only routes
	adminHandler := handler.NewAdminHandler(todos, users)
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.GET("/todos", adminHandler.ListTodos)
	admin.DELETE("/todos/:id", adminHandler.DeleteTodo)
	admin.GET("/users/:id", adminHandler.GetUser)

	return r
}
