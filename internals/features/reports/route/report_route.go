package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/features/reports/controller"
	"sigapbanjar_backend/internals/features/reports/service"
)

// Lapor kondisi terbuka untuk petugas lapangan.
func ReportPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db, service.NewWhatsAppNotifier())
	api.Post("/reports", ctrl.Create)
	api.Get("/reports", ctrl.GetVerified)
}

// Moderasi laporan hanya untuk admin.
func ReportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewModerationController(db)
	admin.Get("/reports/queue", ctrl.Queue)
	admin.Put("/reports/:id/verify", ctrl.Verify)
	admin.Put("/reports/:id/close", ctrl.Close)
	admin.Delete("/reports/:id", ctrl.Delete)
}
