package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/features/households/controller"
)

// Pendataan KK dan lahan dilakukan petugas lapangan tanpa login.
func HouseholdPublicRoutes(api fiber.Router, db *gorm.DB) {
	householdCtrl := controller.NewHouseholdController(db)
	parcelCtrl := controller.NewParcelController(db)

	api.Post("/households", householdCtrl.Create)
	api.Get("/households", householdCtrl.GetAll)

	api.Post("/parcels", parcelCtrl.Create)
	api.Get("/parcels", parcelCtrl.GetAll)
}
