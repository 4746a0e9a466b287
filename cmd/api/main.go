package main

import (
	"log"

	"github.com/langhub/Language_Hub_BackEnd/internal/config"
	"github.com/langhub/Language_Hub_BackEnd/internal/repository/minio"
	"github.com/langhub/Language_Hub_BackEnd/internal/repository/postgres"
	"github.com/langhub/Language_Hub_BackEnd/internal/service"
	httptransport "github.com/langhub/Language_Hub_BackEnd/internal/transport/http"
	"github.com/langhub/Language_Hub_BackEnd/internal/transport/mail"
	"github.com/langhub/Language_Hub_BackEnd/internal/transport/openrouter"
	"github.com/langhub/Language_Hub_BackEnd/internal/util"
)

func main() {
	cfg := config.Load()

	if err := postgres.Migrate(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	minioClient, err := minio.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
	if err != nil {
		log.Fatalf("connect object storage: %v", err)
	}
	storage := minio.NewStorage(minioClient, cfg.MinIOPublicURL)

	userRepo := postgres.NewUserRepo(db)
	resetCodeRepo := postgres.NewResetCodeRepo(db)
	chatRepo := postgres.NewChatRepo(db)
	progressRepo := postgres.NewCourseProgressRepo(db)

	mailer := mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	completions := openrouter.NewClient(cfg.OpenRouterAPIKey, cfg.OpenRouterModel, cfg.FrontendBaseURL)
	tokens := util.NewTokenManager(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo, mailer, storage, service.UserServiceConfig{
		AvatarBucket:   cfg.MinIOBucketAvatars,
		AvatarMaxBytes: cfg.AvatarMaxBytes,
	})
	resetService := service.NewPasswordResetService(userRepo, resetCodeRepo, mailer, cfg.ResetCodeTTL)
	chatService := service.NewChatService(chatRepo, completions)
	courseService := service.NewCourseService(progressRepo)

	e := httptransport.NewRouter(cfg.AllowOrigins)
	httptransport.RegisterAuthRoutes(e, authService)
	httptransport.RegisterUserRoutes(e, authService, userService)
	httptransport.RegisterPasswordRoutes(e, resetService)
	httptransport.RegisterChatRoutes(e, authService, chatService)
	httptransport.RegisterCourseRoutes(e, authService, courseService)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
