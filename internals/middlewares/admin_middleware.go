package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"sigapbanjar_backend/internals/configs"
	helper "sigapbanjar_backend/internals/helpers"
)

// AdminOnly menjaga menu admin (moderasi laporan, logistik, export).
// Sesi admin berupa JWT hasil login credential bersama, bukan flag global.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.Error(c, fiber.StatusUnauthorized, "Login admin diperlukan")
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.Error(c, fiber.StatusInternalServerError, "Konfigurasi server belum lengkap")
		}

		claims, err := helper.ParseAdminToken(secret, tokenString)
		if err != nil {
			log.Println("[ERROR] Token admin ditolak:", err)
			return helper.Error(c, fiber.StatusUnauthorized, "Sesi admin tidak valid atau kedaluwarsa")
		}

		c.Locals("admin_username", claims["sub"])
		return c.Next()
	}
}
