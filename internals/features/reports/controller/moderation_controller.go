package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/features/reports/dto"
	"sigapbanjar_backend/internals/features/reports/model"
	helper "sigapbanjar_backend/internals/helpers"
)

// ModerationController menangani alur verifikasi laporan oleh admin:
// pending → verified → closed, plus hapus untuk laporan palsu.
type ModerationController struct {
	DB *gorm.DB
}

func NewModerationController(db *gorm.DB) *ModerationController {
	return &ModerationController{DB: db}
}

// Queue menampilkan antrean moderasi. Default hanya pending; riwayat
// verified/closed bisa dilihat lewat ?status=.
func (ctrl *ModerationController) Queue(c *fiber.Ctx) error {
	status := model.ReportStatus(c.Query("status", string(model.ReportStatusPending)))
	switch status {
	case model.ReportStatusPending, model.ReportStatusVerified, model.ReportStatusClosed:
	default:
		return helper.Error(c, fiber.StatusBadRequest, "Status tidak dikenal")
	}

	var reports []model.FloodReportModel
	if err := ctrl.DB.Where("report_status = ?", status).
		Order("created_at ASC").
		Find(&reports).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil antrean moderasi")
	}

	out := make([]dto.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, dto.ToReportResponse(r, helper.PhotoURL))
	}
	return helper.Success(c, "Antrean moderasi", out)
}

// Verify mengonfirmasi laporan sesuai kondisi lapangan.
// verified → verified dianggap no-op; closed bersifat terminal.
func (ctrl *ModerationController) Verify(c *fiber.Ctx) error {
	report, err := ctrl.findByID(c)
	if err != nil {
		return helper.StorageError(c, err, "", "Laporan tidak ditemukan")
	}

	switch report.ReportStatus {
	case model.ReportStatusVerified:
		return helper.Success(c, "Laporan sudah terverifikasi", dto.ToReportResponse(*report, helper.PhotoURL))
	case model.ReportStatusClosed:
		return helper.Error(c, fiber.StatusConflict, "Laporan sudah ditutup")
	}

	if err := ctrl.DB.Model(report).
		Update("report_status", model.ReportStatusVerified).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memverifikasi laporan")
	}
	report.ReportStatus = model.ReportStatusVerified

	return helper.Success(c, "Laporan terverifikasi", dto.ToReportResponse(*report, helper.PhotoURL))
}

// Close menandai insiden selesai. Hanya laporan verified yang bisa ditutup:
// transisi satu langkah, tidak boleh loncat dari pending.
func (ctrl *ModerationController) Close(c *fiber.Ctx) error {
	report, err := ctrl.findByID(c)
	if err != nil {
		return helper.StorageError(c, err, "", "Laporan tidak ditemukan")
	}

	switch report.ReportStatus {
	case model.ReportStatusPending:
		return helper.Error(c, fiber.StatusConflict, "Laporan belum diverifikasi")
	case model.ReportStatusClosed:
		return helper.Error(c, fiber.StatusConflict, "Laporan sudah ditutup")
	}

	if err := ctrl.DB.Model(report).
		Update("report_status", model.ReportStatusClosed).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menutup laporan")
	}
	report.ReportStatus = model.ReportStatusClosed

	return helper.Success(c, "Laporan ditutup", dto.ToReportResponse(*report, helper.PhotoURL))
}

// Delete menghapus laporan yang dinilai palsu. Destructive: record hilang.
// Laporan closed adalah riwayat dan tidak bisa dihapus.
func (ctrl *ModerationController) Delete(c *fiber.Ctx) error {
	report, err := ctrl.findByID(c)
	if err != nil {
		return helper.StorageError(c, err, "", "Laporan tidak ditemukan")
	}

	if report.ReportStatus == model.ReportStatusClosed {
		return helper.Error(c, fiber.StatusConflict, "Laporan yang sudah ditutup tidak bisa dihapus")
	}

	if err := ctrl.DB.Delete(report).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus laporan")
	}

	return helper.Success(c, "Laporan dihapus", nil)
}

func (ctrl *ModerationController) findByID(c *fiber.Ctx) (*model.FloodReportModel, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var report model.FloodReportModel
	if err := ctrl.DB.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}
