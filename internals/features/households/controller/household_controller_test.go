package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sigapbanjar_backend/internals/constants"
	"sigapbanjar_backend/internals/features/households/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.HouseholdModel{}, &model.AgriculturalParcelModel{}))
	return db
}

func TestHouseholdCreate_DuplicateNIKRejectedWithoutMutation(t *testing.T) {
	db := openTestDB(t)
	ctrl := NewHouseholdController(db)

	app := fiber.New()
	app.Post("/households", ctrl.Create)

	payload := map[string]interface{}{
		"household_nik":            "6303011234567890",
		"household_head_name":      "Ahmad Fauzi",
		"household_district":       "Martapura",
		"household_member_count":   4,
		"household_housing_status": constants.HouseSeverelyDamaged,
		"household_vulnerable_groups": []string{"Balita", "Lansia"},
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest("POST", "/households", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// entri kedua dengan NIK sama harus ditolak
	req = httptest.NewRequest("POST", "/households", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.HouseholdModel{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestHouseholdCreate_Validation(t *testing.T) {
	db := openTestDB(t)
	ctrl := NewHouseholdController(db)

	app := fiber.New()
	app.Post("/households", ctrl.Create)

	tests := []struct {
		name    string
		mutate  func(map[string]interface{})
		wantErr int
	}{
		{"NIK terlalu pendek", func(p map[string]interface{}) { p["household_nik"] = "123" }, fiber.StatusBadRequest},
		{"nama kosong", func(p map[string]interface{}) { p["household_head_name"] = "" }, fiber.StatusBadRequest},
		{"kecamatan tak dikenal", func(p map[string]interface{}) { p["household_district"] = "Banjarmasin" }, fiber.StatusBadRequest},
		{"jumlah anggota nol", func(p map[string]interface{}) { p["household_member_count"] = 0 }, fiber.StatusBadRequest},
		{"status rumah tak dikenal", func(p map[string]interface{}) { p["household_housing_status"] = "Aman" }, fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := map[string]interface{}{
				"household_nik":            "6303019876543210",
				"household_head_name":      "Siti Rahma",
				"household_district":       "Sungai Tabuk",
				"household_member_count":   3,
				"household_housing_status": constants.HouseFloodedHabitable,
			}
			tt.mutate(payload)
			body, _ := json.Marshal(payload)
			req := httptest.NewRequest("POST", "/households", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tt.wantErr, resp.StatusCode)
		})
	}

	var count int64
	require.NoError(t, db.Model(&model.HouseholdModel{}).Count(&count).Error)
	require.Equal(t, int64(0), count)
}
