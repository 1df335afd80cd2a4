package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/constants"
	analytics "sigapbanjar_backend/internals/features/analytics/service"
	"sigapbanjar_backend/internals/features/households/dto"
	"sigapbanjar_backend/internals/features/households/model"
	helper "sigapbanjar_backend/internals/helpers"
)

type ParcelController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewParcelController(db *gorm.DB) *ParcelController {
	return &ParcelController{DB: db, validate: validator.New()}
}

// Create mendata lahan pertanian terdampak beserta estimasi kerugiannya.
// Foto opsional dikirim sebagai multipart field "photo".
func (ctrl *ParcelController) Create(c *fiber.Ctx) error {
	var req dto.ParcelCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidDistrict(req.ParcelDistrict) {
		return helper.Error(c, fiber.StatusBadRequest, "Kecamatan tidak dikenal")
	}

	parcel := model.AgriculturalParcelModel{
		ParcelOwnerNIK:      req.ParcelOwnerNIK,
		ParcelDistrict:      req.ParcelDistrict,
		ParcelAreaHa:        req.ParcelAreaHa,
		ParcelCropAgeDays:   req.ParcelCropAgeDays,
		ParcelEstimatedLoss: analytics.CropLoss(req.ParcelAreaHa, req.ParcelCropAgeDays),
		ParcelLatitude:      req.ParcelLatitude,
		ParcelLongitude:     req.ParcelLongitude,
		CreatedAt:           time.Now(),
	}

	if fileHeader, err := c.FormFile("photo"); err == nil && fileHeader != nil {
		path, err := helper.SaveUploadedPhoto("parcels", fileHeader)
		if err != nil {
			log.Println("[ERROR] Upload foto lahan gagal:", err)
			return helper.Error(c, fiber.StatusBadRequest, "Foto tidak bisa diproses")
		}
		parcel.ParcelPhotoPath = &path
	}

	if err := ctrl.DB.Create(&parcel).Error; err != nil {
		return helper.StorageError(c, err, "Data lahan sudah ada", "Data lahan tidak ditemukan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Data lahan tersimpan",
		dto.ToParcelResponse(parcel, helper.PhotoURL))
}

// GetAll menampilkan daftar lahan, bisa difilter per kecamatan atau NIK pemilik.
func (ctrl *ParcelController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.AgriculturalParcelModel{}).Order("created_at DESC")
	if district := c.Query("district"); district != "" {
		q = q.Where("parcel_district = ?", district)
	}
	if nik := c.Query("nik"); nik != "" {
		q = q.Where("parcel_owner_nik = ?", nik)
	}

	var parcels []model.AgriculturalParcelModel
	if err := q.Find(&parcels).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data lahan")
	}

	out := make([]dto.ParcelResponse, 0, len(parcels))
	for _, p := range parcels {
		out = append(out, dto.ToParcelResponse(p, helper.PhotoURL))
	}
	return helper.Success(c, "Daftar lahan", out)
}
