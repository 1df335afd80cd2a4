package model

import "time"

// Snapshot cuaca per kecamatan. Field nullable: API gagal → "tidak ada data".
type WeatherSnapshotModel struct {
	WeatherID        uint      `json:"weather_id" gorm:"column:weather_id;primaryKey"`
	WeatherDistrict  string    `json:"weather_district" gorm:"column:weather_district;index;not null"`
	WeatherTempC     *float64  `json:"weather_temp_c,omitempty" gorm:"column:weather_temp_c"`
	WeatherCondition *string   `json:"weather_condition,omitempty" gorm:"column:weather_condition"`
	WeatherHumidity  *int      `json:"weather_humidity,omitempty" gorm:"column:weather_humidity"`
	WeatherRainMM    *float64  `json:"weather_rain_mm,omitempty" gorm:"column:weather_rain_mm"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
}

func (WeatherSnapshotModel) TableName() string {
	return "weather_snapshot"
}
