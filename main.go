package main

import (
	"context"
	"log"

	"github.com/filipkase07-hue/ppl-quiz-backend/api"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/config"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/controller"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/repository"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/service"
)

func main() {
	cfg := config.LoadEnv()

	db, err := config.InitDB(cfg.PostgresConnStr())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if err := config.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("Error initializing schema: %v", err)
	}

	jwt := config.NewJWT(cfg.JwtSecret)

	userRepo := repository.NewUserRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	authService := service.NewAuthService(userRepo, jwt)
	progressService := service.NewProgressService(progressRepo)

	authController := controller.NewAuthController(authService)
	progressController := controller.NewProgressController(progressService)

	handler := api.SetupRoutes(authController, progressController, jwt)
	server := api.NewServer(":"+cfg.Port, handler)

	server.StartWithGracefulShutdown()
}
