package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/features/analytics/dto"
	householdModel "sigapbanjar_backend/internals/features/households/model"
	reportModel "sigapbanjar_backend/internals/features/reports/model"
	helper "sigapbanjar_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type groupCount struct {
	Name  string
	Total int64
}

// Summary menghitung ringkasan situasi terkini. Hanya laporan verified
// yang ikut ke metrik publik.
func (ctrl *DashboardController) Summary(c *fiber.Ctx) error {
	var resp dto.DashboardResponse

	if err := ctrl.DB.Model(&householdModel.HouseholdModel{}).
		Count(&resp.TotalHouseholds).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}

	if err := ctrl.DB.Model(&householdModel.HouseholdModel{}).
		Select("COALESCE(SUM(household_member_count), 0)").
		Scan(&resp.TotalPopulation).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}

	var perDistrict []groupCount
	if err := ctrl.DB.Model(&householdModel.HouseholdModel{}).
		Select("household_district AS name, COUNT(*) AS total").
		Group("household_district").
		Scan(&perDistrict).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}
	resp.HouseholdsPerDistrict = make(map[string]int64, len(perDistrict))
	for _, g := range perDistrict {
		resp.HouseholdsPerDistrict[g.Name] = g.Total
	}

	var perStatus []groupCount
	if err := ctrl.DB.Model(&householdModel.HouseholdModel{}).
		Select("household_housing_status AS name, COUNT(*) AS total").
		Group("household_housing_status").
		Scan(&perStatus).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}
	resp.HousingStatusCounts = make(map[string]int64, len(perStatus))
	for _, g := range perStatus {
		resp.HousingStatusCounts[g.Name] = g.Total
	}

	if err := ctrl.DB.Model(&reportModel.FloodReportModel{}).
		Where("report_status = ?", reportModel.ReportStatusVerified).
		Count(&resp.VerifiedReportCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}

	if err := ctrl.DB.Model(&reportModel.FloodReportModel{}).
		Where("report_status = ?", reportModel.ReportStatusVerified).
		Select("COALESCE(MAX(report_water_level_cm), 0)").
		Scan(&resp.MaxWaterLevelCM).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan")
	}
	resp.RegionStatus = reportModel.ClassifyWaterLevel(resp.MaxWaterLevelCM)

	return helper.Success(c, "Ringkasan situasi terkini", resp)
}
