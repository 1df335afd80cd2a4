package route

import (
	"github.com/gofiber/fiber/v2"

	"sigapbanjar_backend/internals/features/auth/controller"
	"sigapbanjar_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router) {
	ctrl := controller.NewAuthController()
	api.Post("/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
