package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/configs"
	analyticsRoute "sigapbanjar_backend/internals/features/analytics/route"
	authRoute "sigapbanjar_backend/internals/features/auth/route"
	householdRoute "sigapbanjar_backend/internals/features/households/route"
	inventoryRoute "sigapbanjar_backend/internals/features/inventory/route"
	reportRoute "sigapbanjar_backend/internals/features/reports/route"
	weatherRoute "sigapbanjar_backend/internals/features/weather/route"
	"sigapbanjar_backend/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Foto laporan & lahan disajikan statis; file hilang → 404, bukan error
	app.Static("/uploads", configs.UploadDir)

	log.Println("[INFO] Setting up AuthRoutes...")
	api := app.Group("/api")
	authRoute.AuthRoutes(api)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	householdRoute.HouseholdPublicRoutes(public, db)
	reportRoute.ReportPublicRoutes(public, db)
	analyticsRoute.AnalyticsPublicRoutes(public, db)
	weatherRoute.WeatherPublicRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (shared credential + JWT)...")
	admin := app.Group("/api/a", middlewares.AdminOnly())
	reportRoute.ReportAdminRoutes(admin, db)
	inventoryRoute.InventoryAdminRoutes(admin, db)
	analyticsRoute.AnalyticsAdminRoutes(admin, db)
}
