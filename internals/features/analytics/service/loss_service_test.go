package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sigapbanjar_backend/internals/constants"
)

func TestHousingLoss(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   int64
	}{
		{"terendam bisa ditempati", constants.HouseFloodedHabitable, 1_500_000},
		{"terendam mengungsi", constants.HouseFloodedEvacuated, 5_000_000},
		{"rusak berat", constants.HouseSeverelyDamaged, 25_000_000},
		{"kategori tak dikenal", "Rumah Panggung", 0},
		{"kategori kosong", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HousingLoss(tt.status))
		})
	}
}

func TestCropLoss(t *testing.T) {
	tests := []struct {
		name    string
		areaHa  float64
		ageDays int
		want    int64
	}{
		{"umur muda faktor 0.3", 2.0, 15, 9_000_000},
		{"umur sedang faktor 0.6", 2.0, 45, 18_000_000},
		{"umur tua faktor 1.0", 2.0, 90, 30_000_000},
		{"batas bawah 30 hari", 1.0, 30, 9_000_000},
		{"tepat di bawah 30 hari", 1.0, 29, 4_500_000},
		{"batas bawah 60 hari", 1.0, 60, 15_000_000},
		{"tepat di bawah 60 hari", 1.0, 59, 9_000_000},
		{"luas pecahan", 0.5, 90, 7_500_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CropLoss(tt.areaHa, tt.ageDays))
		})
	}
}
