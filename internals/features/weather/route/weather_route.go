package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/features/weather/controller"
)

func WeatherPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewWeatherController(db)
	api.Get("/weather", ctrl.Latest)
}
