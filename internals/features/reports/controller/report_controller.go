package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/constants"
	"sigapbanjar_backend/internals/features/reports/dto"
	"sigapbanjar_backend/internals/features/reports/model"
	"sigapbanjar_backend/internals/features/reports/service"
	helper "sigapbanjar_backend/internals/helpers"
)

type ReportController struct {
	DB       *gorm.DB
	validate *validator.Validate
	Notifier *service.WhatsAppNotifier
}

func NewReportController(db *gorm.DB, notifier *service.WhatsAppNotifier) *ReportController {
	return &ReportController{DB: db, validate: validator.New(), Notifier: notifier}
}

// Create menerima laporan kondisi dari lapangan. Laporan baru selalu
// berstatus pending sampai diverifikasi admin. Foto opsional dikirim
// sebagai multipart field "photo".
func (ctrl *ReportController) Create(c *fiber.Ctx) error {
	var req dto.ReportCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !constants.IsValidDistrict(req.ReportDistrict) {
		return helper.Error(c, fiber.StatusBadRequest, "Kecamatan tidak dikenal")
	}
	if !constants.IsSubsetOf(req.ReportNeeds, constants.ReportNeeds) {
		return helper.Error(c, fiber.StatusBadRequest, "Jenis kebutuhan tidak dikenal")
	}

	report := model.FloodReportModel{
		ReportDistrict:   req.ReportDistrict,
		ReportWaterLevel: req.ReportWaterLevel,
		ReportAlertLevel: model.ClassifyWaterLevel(req.ReportWaterLevel),
		ReportNeeds:      req.ReportNeeds,
		ReportStatus:     model.ReportStatusPending,
		CreatedAt:        time.Now(),
	}

	if fileHeader, err := c.FormFile("photo"); err == nil && fileHeader != nil {
		path, err := helper.SaveUploadedPhoto("reports", fileHeader)
		if err != nil {
			log.Println("[ERROR] Upload foto laporan gagal:", err)
			return helper.Error(c, fiber.StatusBadRequest, "Foto tidak bisa diproses")
		}
		report.ReportPhotoPath = &path
	}

	if err := ctrl.DB.Create(&report).Error; err != nil {
		return helper.StorageError(c, err, "Laporan duplikat", "Laporan tidak ditemukan")
	}

	// Notifikasi WA dikirim di background; gagal kirim tidak mempengaruhi
	// response ke pelapor.
	if ctrl.Notifier != nil {
		go ctrl.Notifier.SendFloodAlert(report.ReportDistrict, report.ReportWaterLevel, report.ReportNeeds)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Laporan terkirim", dto.ToReportResponse(report, helper.PhotoURL))
}

// GetVerified menampilkan laporan terverifikasi untuk dashboard publik.
func (ctrl *ReportController) GetVerified(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.FloodReportModel{}).
		Where("report_status = ?", model.ReportStatusVerified).
		Order("created_at DESC")
	if district := c.Query("district"); district != "" {
		q = q.Where("report_district = ?", district)
	}

	var reports []model.FloodReportModel
	if err := q.Find(&reports).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}

	out := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, dto.ToReportResponse(r, helper.PhotoURL))
	}
	return helper.Success(c, "Laporan terverifikasi", out)
}
