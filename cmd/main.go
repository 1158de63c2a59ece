package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dorotad/contacts-backend/internal/db"
	"github.com/dorotad/contacts-backend/internal/handlers"
	"github.com/dorotad/contacts-backend/internal/logger"
	"github.com/dorotad/contacts-backend/internal/middleware"
	"github.com/dorotad/contacts-backend/internal/platform/sendgrid"
	"github.com/dorotad/contacts-backend/internal/repos"
	"github.com/dorotad/contacts-backend/internal/server"
	"github.com/dorotad/contacts-backend/internal/services"
	"github.com/dorotad/contacts-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	tokenTTL := utils.GetEnvAsInt("TOKEN_TTL", 3600, log)
	avatarDir := utils.GetEnv("AVATAR_DIR", "public/avatars", log)
	appBaseURL := utils.GetEnv("APP_BASE_URL", "http://localhost:3000", log)

	if err := os.MkdirAll(avatarDir, 0o755); err != nil {
		log.Error("Could not create avatar directory", "dir", avatarDir, "error", err)
		os.Exit(1)
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	userRepo := repos.NewUserRepo(thePG, log)
	contactRepo := repos.NewContactRepo(thePG, log)

	// Mailer
	var mailClient sendgrid.Client
	mailClient, err = sendgrid.New(log, sendgrid.Config{
		APIKey:    utils.GetEnv("SENDGRID_API_KEY", "", log),
		BaseURL:   utils.GetEnv("SENDGRID_BASE_URL", "", log),
		FromEmail: utils.GetEnv("SENDGRID_FROM_EMAIL", "", log),
		FromName:  utils.GetEnv("SENDGRID_FROM_NAME", "", log),
	})
	if err != nil {
		log.Warn("Could not init SendGrid client, verification emails disabled", "error", err)
		mailClient = nil
	}

	// Services
	log.Info("Setting up services...")
	emailService := services.NewEmailService(log, mailClient, appBaseURL)
	mediaProcessor := services.NewImageProcessor(log)
	authService := services.NewAuthService(thePG, log, userRepo, emailService, jwtSecretKey, time.Duration(tokenTTL)*time.Second)
	userService := services.NewUserService(thePG, log, userRepo, mediaProcessor, avatarDir)
	contactService := services.NewContactService(thePG, log, contactRepo)

	// Handlers
	log.Info("Setting up handlers...")
	userHandler := handlers.NewUserHandler(authService, userService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router...")
	router := server.NewRouter(server.RouterConfig{
		ContactHandler: contactHandler,
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})

	port := utils.GetEnv("PORT", "3000", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
