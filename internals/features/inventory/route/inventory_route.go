package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/features/inventory/controller"
)

// Manajemen logistik hanya untuk admin posko.
func InventoryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInventoryController(db)
	admin.Post("/inventory/items", ctrl.CreateItem)
	admin.Get("/inventory/items", ctrl.GetItems)
	admin.Post("/inventory/transactions", ctrl.CreateTransaction)
	admin.Get("/inventory/transactions", ctrl.GetTransactions)
}
