package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/features/analytics/controller"
)

// Dashboard dan analisis terbuka untuk publik.
func AnalyticsPublicRoutes(api fiber.Router, db *gorm.DB) {
	dashboard := controller.NewDashboardController(db)
	analysis := controller.NewAnalysisController(db)

	api.Get("/dashboard", dashboard.Summary)
	api.Get("/analysis/losses", analysis.Losses)
}

// Export laporan hanya untuk admin.
func AnalyticsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	export := controller.NewExportController(db)
	admin.Get("/export/households.xlsx", export.HouseholdsExcel)
	admin.Get("/export/summary.pdf", export.SummaryPDF)
}
