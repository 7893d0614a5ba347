package routers

import (
	"time"
	"timegrid-service/internal/app/config"
	"timegrid-service/internal/app/delivery/http/controllers"
	"timegrid-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, internalConfig *config.InternalConfig, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	loginLimiter := newLoginRateLimiter(internalConfig)

	router.Post("/register", authController.Register)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}

func newLoginRateLimiter(internalConfig *config.InternalConfig) *middlewares.RateLimiter {
	return middlewares.NewRateLimiter(
		internalConfig.App.LoginMaxPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.LoginBlockTimeInMinute)*time.Minute,
	)
}
