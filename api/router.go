package api

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/filipkase07-hue/ppl-quiz-backend/internal/config"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/controller"
	"github.com/filipkase07-hue/ppl-quiz-backend/internal/middleware"
)

var router *http.ServeMux

func SetupRoutes(authController *controller.AuthController, progressController *controller.ProgressController, token config.Token) http.Handler {
	router = http.NewServeMux()

	setupAuthRoutes(authController)
	setupProgressRoutes(progressController, token)
	setupSystemRoutes(authController)

	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	})(router)
}

func applyMiddleware(h middleware.HandlerFunc) http.HandlerFunc {
	return middleware.ErrorHandler(
		middleware.TrustProxyMiddleware(
			middleware.LoggingMiddleware(h),
		),
	)
}

func applyProtectedMiddleware(token config.Token, h middleware.HandlerFunc) http.HandlerFunc {
	return applyMiddleware(middleware.AuthMiddleware(token)(h))
}

func setupAuthRoutes(authController *controller.AuthController) {
	router.Handle("POST /api/auth/register", applyMiddleware(authController.Register))
	router.Handle("POST /api/auth/login", applyMiddleware(authController.Login))
}

func setupProgressRoutes(progressController *controller.ProgressController, token config.Token) {
	router.Handle("GET /api/progress", applyProtectedMiddleware(token, progressController.GetAll))
	router.Handle("POST /api/progress", applyProtectedMiddleware(token, progressController.Record))
	router.Handle("GET /api/progress/{quizName}", applyProtectedMiddleware(token, progressController.Get))
	router.Handle("DELETE /api/progress/{quizName}", applyProtectedMiddleware(token, progressController.Reset))
	router.Handle("GET /api/history/{quizName}", applyProtectedMiddleware(token, progressController.History))
	router.Handle("GET /api/stats", applyProtectedMiddleware(token, progressController.Stats))
}

func setupSystemRoutes(authController *controller.AuthController) {
	router.Handle("GET /api/health", applyMiddleware(authController.HealthCheck))
}
