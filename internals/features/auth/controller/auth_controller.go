package controller

import (
	"crypto/subtle"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"sigapbanjar_backend/internals/configs"
	"sigapbanjar_backend/internals/features/auth/dto"
	helper "sigapbanjar_backend/internals/helpers"
)

type AuthController struct {
	validate *validator.Validate
}

func NewAuthController() *AuthController {
	return &AuthController{validate: validator.New()}
}

// Login memverifikasi credential admin bersama dan menerbitkan JWT sesi.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if configs.AdminPassword == "" {
		log.Println("[ERROR] ADMIN_PASSWORD belum diset")
		return helper.Error(c, fiber.StatusInternalServerError, "Konfigurasi server belum lengkap")
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(configs.AdminUsername)) == 1
	if !userOK || !passwordMatch(req.Password, configs.AdminPassword) {
		return helper.Error(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := helper.GenerateAdminToken(configs.JWTSecret, req.Username)
	if err != nil {
		log.Println("[ERROR] Gagal membuat token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat sesi")
	}

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		Role:        "admin",
	})
}

// ADMIN_PASSWORD boleh berupa hash bcrypt atau plaintext (deployment lama
// masih menyimpan password bersama apa adanya).
func passwordMatch(given, stored string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(stored)) == 1
}
