package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dorotad/contacts-backend/internal/handlers"
	"github.com/dorotad/contacts-backend/internal/middleware"
)

type RouterConfig struct {
	ContactHandler *handlers.ContactHandler
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/users/signup", cfg.UserHandler.Signup)
	router.POST("/users/login", cfg.UserHandler.Login)
	router.GET("/users/verify/:verificationToken", cfg.UserHandler.Verify)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// User
	protected.GET("/users/logout", cfg.UserHandler.Logout)
	protected.GET("/users/current", cfg.UserHandler.Current)
	protected.PATCH("/users/avatars", cfg.UserHandler.UpdateAvatar)
	// Contacts
	protected.GET("", cfg.ContactHandler.List)
	protected.GET("/:contactId", cfg.ContactHandler.GetByID)
	protected.POST("", cfg.ContactHandler.Create)
	protected.PUT("/:contactId", cfg.ContactHandler.Update)
	protected.PATCH("/:contactId/favorite", cfg.ContactHandler.UpdateFavorite)
	protected.DELETE("/:contactId", cfg.ContactHandler.Remove)

	return router
}
