package controller

import (
	"bytes"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/features/analytics/service"
	householdModel "sigapbanjar_backend/internals/features/households/model"
	helper "sigapbanjar_backend/internals/helpers"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// HouseholdsExcel mengekspor seluruh baris KK apa adanya ke spreadsheet.
func (ctrl *ExportController) HouseholdsExcel(c *fiber.Ctx) error {
	var households []householdModel.HouseholdModel
	if err := ctrl.DB.Order("created_at ASC").Find(&households).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data KK")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Data KK"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Waktu Input", "NIK", "Nama Kepala Keluarga", "Kecamatan", "Jumlah Anggota", "Status Rumah", "Kelompok Rentan"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, h := range households {
		values := []interface{}{
			h.CreatedAt.Format("2006-01-02 15:04"),
			h.HouseholdNIK,
			h.HouseholdHeadName,
			h.HouseholdDistrict,
			h.HouseholdMemberCount,
			h.HouseholdHousingStatus,
			strings.Join(h.HouseholdVulnerable, ", "),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Println("[ERROR] Gagal menulis Excel:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat file Excel")
	}

	filename := fmt.Sprintf("Data_KK_Banjar_%s.xlsx", time.Now().Format("02012006"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// SummaryPDF mencetak laporan ringkasan dampak: judul, tanggal cetak,
// tabel ringkasan, lalu tabel detail yang dipangkas ke beberapa kolom
// supaya muat di lebar A4.
func (ctrl *ExportController) SummaryPDF(c *fiber.Ctx) error {
	var households []householdModel.HouseholdModel
	if err := ctrl.DB.Order("created_at ASC").Find(&households).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data KK")
	}

	analysis, err := service.ComputeLossAnalysis(ctrl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung analisis kerugian")
	}

	var totalJiwa int64
	for _, h := range households {
		totalJiwa += int64(h.HouseholdMemberCount)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "LAPORAN RINGKASAN DAMPAK BANJIR", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Tanggal Cetak: "+time.Now().Format("02-01-2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	summary := [][2]string{
		{"Total KK Terdata", strconv.Itoa(len(households))},
		{"Total Jiwa Terdampak", fmt.Sprintf("%d Orang", totalJiwa)},
		{"Estimasi Total Kerugian", FormatRupiah(analysis.TotalLoss)},
	}
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range summary {
		pdf.CellFormat(70, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 8, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 7, "Nama KK", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, "Kecamatan", "1", 0, "L", false, 0, "")
	pdf.CellFormat(55, 7, "Status Rumah", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Anggota", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, h := range households {
		pdf.CellFormat(60, 7, h.HouseholdHeadName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, h.HouseholdDistrict, "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 7, h.HouseholdHousingStatus, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, strconv.Itoa(h.HouseholdMemberCount), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Println("[ERROR] Gagal menulis PDF:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat file PDF")
	}

	filename := fmt.Sprintf("Laporan_Banjar_%s.pdf", time.Now().Format("02012006"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// FormatRupiah menulis nominal dengan pemisah ribuan titik, mis. Rp 55.000.000.
func FormatRupiah(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "Rp " + strings.Join(parts, ".")
	if neg {
		out = "Rp -" + strings.Join(parts, ".")
	}
	return out
}
