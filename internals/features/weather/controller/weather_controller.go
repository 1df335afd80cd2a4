package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/constants"
	"sigapbanjar_backend/internals/features/weather/model"
	helper "sigapbanjar_backend/internals/helpers"
)

type WeatherController struct {
	DB *gorm.DB
}

func NewWeatherController(db *gorm.DB) *WeatherController {
	return &WeatherController{DB: db}
}

// Latest menampilkan snapshot cuaca terakhir per kecamatan. Kecamatan yang
// belum pernah punya snapshot tampil tanpa data, bukan error.
func (ctrl *WeatherController) Latest(c *fiber.Ctx) error {
	districts := constants.Districts
	if d := c.Query("district"); d != "" {
		if !constants.IsValidDistrict(d) {
			return helper.Error(c, fiber.StatusBadRequest, "Kecamatan tidak dikenal")
		}
		districts = []string{d}
	}

	out := make([]model.WeatherSnapshotModel, 0, len(districts))
	for _, district := range districts {
		var snap model.WeatherSnapshotModel
		err := ctrl.DB.Where("weather_district = ?", district).
			Order("created_at DESC").
			First(&snap).Error
		if err != nil {
			if helper.IsNotFound(err) {
				out = append(out, model.WeatherSnapshotModel{WeatherDistrict: district})
				continue
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data cuaca")
		}
		out = append(out, snap)
	}

	return helper.Success(c, "Pantauan cuaca", out)
}
