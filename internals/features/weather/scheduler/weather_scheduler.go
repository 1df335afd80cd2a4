package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/constants"
	"sigapbanjar_backend/internals/features/weather/model"
	"sigapbanjar_backend/internals/features/weather/service"
)

// StartWeatherScheduler menyalakan polling cuaca tiap 30 menit untuk semua
// kecamatan. Kegagalan per kecamatan hanya dicatat; polling lanjut terus.
func StartWeatherScheduler(db *gorm.DB) *cron.Cron {
	client := service.NewWeatherClient()
	if client.APIKey == "" {
		log.Println("⚠️ WEATHER_API_KEY kosong, scheduler cuaca tidak dijalankan")
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc("@every 30m", func() {
		PollAllDistricts(db, client)
	}); err != nil {
		log.Println("[ERROR] Gagal mendaftarkan job cuaca:", err)
		return nil
	}
	c.Start()
	log.Println("✅ Scheduler cuaca aktif (tiap 30 menit)")
	return c
}

// PollAllDistricts mengambil lalu menyimpan snapshot untuk tiap kecamatan.
func PollAllDistricts(db *gorm.DB, client *service.WeatherClient) {
	for _, district := range constants.Districts {
		obs, ok := client.Fetch(district)
		if !ok {
			log.Printf("[WARN] Tidak ada data cuaca untuk %s", district)
			continue
		}
		snap := model.WeatherSnapshotModel{
			WeatherDistrict:  district,
			WeatherTempC:     obs.TempC,
			WeatherCondition: obs.Condition,
			WeatherHumidity:  obs.Humidity,
			WeatherRainMM:    obs.RainMM,
			CreatedAt:        time.Now(),
		}
		if err := db.Create(&snap).Error; err != nil {
			log.Printf("[ERROR] Gagal simpan snapshot cuaca %s: %v", district, err)
		}
	}
}
