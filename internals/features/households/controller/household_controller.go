package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/constants"
	"sigapbanjar_backend/internals/features/households/dto"
	"sigapbanjar_backend/internals/features/households/model"
	helper "sigapbanjar_backend/internals/helpers"
)

type HouseholdController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewHouseholdController(db *gorm.DB) *HouseholdController {
	return &HouseholdController{DB: db, validate: validator.New()}
}

// Create mendata satu KK terdampak. NIK unik: entri ganda ditolak tanpa
// menyentuh registry.
func (ctrl *HouseholdController) Create(c *fiber.Ctx) error {
	var req dto.HouseholdCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidDistrict(req.HouseholdDistrict) {
		return helper.Error(c, fiber.StatusBadRequest, "Kecamatan tidak dikenal")
	}
	if !constants.IsValidHousingStatus(req.HouseholdHousingStatus) {
		return helper.Error(c, fiber.StatusBadRequest, "Status rumah tidak dikenal")
	}
	if !constants.IsSubsetOf(req.HouseholdVulnerable, constants.VulnerableGroups) {
		return helper.Error(c, fiber.StatusBadRequest, "Kelompok rentan tidak dikenal")
	}

	household := model.HouseholdModel{
		HouseholdNIK:           req.HouseholdNIK,
		HouseholdHeadName:      req.HouseholdHeadName,
		HouseholdDistrict:      req.HouseholdDistrict,
		HouseholdMemberCount:   req.HouseholdMemberCount,
		HouseholdHousingStatus: req.HouseholdHousingStatus,
		HouseholdVulnerable:    req.HouseholdVulnerable,
		CreatedAt:              time.Now(),
	}

	if err := ctrl.DB.Create(&household).Error; err != nil {
		return helper.StorageError(c, err,
			"NIK "+req.HouseholdNIK+" sudah terdata",
			"Data KK tidak ditemukan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Data KK tersimpan", dto.ToHouseholdResponse(household))
}

// GetAll menampilkan daftar KK, bisa difilter per kecamatan.
func (ctrl *HouseholdController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.HouseholdModel{}).Order("created_at DESC")
	if district := c.Query("district"); district != "" {
		q = q.Where("household_district = ?", district)
	}

	var households []model.HouseholdModel
	if err := q.Find(&households).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data KK")
	}

	out := make([]dto.HouseholdResponse, 0, len(households))
	for _, h := range households {
		out = append(out, dto.ToHouseholdResponse(h))
	}
	return helper.Success(c, "Daftar KK", out)
}
