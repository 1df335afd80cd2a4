package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/features/analytics/service"
	helper "sigapbanjar_backend/internals/helpers"
)

type AnalysisController struct {
	DB *gorm.DB
}

func NewAnalysisController(db *gorm.DB) *AnalysisController {
	return &AnalysisController{DB: db}
}

// Losses menghitung estimasi kerugian total: kerugian hunian per KK
// (lookup kategori) + kerugian tanaman per lahan. Tiap record dihitung
// sendiri-sendiri, tanpa dedup selain satu-record-per-entitas.
func (ctrl *AnalysisController) Losses(c *fiber.Ctx) error {
	resp, err := service.ComputeLossAnalysis(ctrl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung analisis kerugian")
	}
	return helper.Success(c, "Analisis kerugian", resp)
}
