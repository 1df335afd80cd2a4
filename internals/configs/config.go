package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	FonnteToken   string
	FonnteTarget  string
	WeatherAPIKey string
	UploadDir     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AdminUsername = GetEnv("ADMIN_USERNAME", "admin_bpbd")
	AdminPassword = GetEnv("ADMIN_PASSWORD")
	FonnteToken = GetEnv("FONNTE_TOKEN")
	FonnteTarget = GetEnv("FONNTE_TARGET")
	WeatherAPIKey = GetEnv("WEATHER_API_KEY")
	UploadDir = GetEnv("UPLOAD_DIR", "./uploads")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if AdminPassword == "" {
		log.Println("❌ ADMIN_PASSWORD belum diset, menu admin tidak bisa diakses!")
	}

	if FonnteToken == "" {
		log.Println("⚠️ FONNTE_TOKEN kosong, notifikasi WA dinonaktifkan.")
	}

	if WeatherAPIKey == "" {
		log.Println("⚠️ WEATHER_API_KEY kosong, pantauan cuaca dinonaktifkan.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
