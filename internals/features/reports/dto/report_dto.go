package dto

import (
	"time"

	"sigapbanjar_backend/internals/features/reports/model"
)

type ReportCreateRequest struct {
	ReportDistrict   string   `json:"report_district" form:"report_district" validate:"required"`
	ReportWaterLevel int      `json:"report_water_level_cm" form:"report_water_level_cm" validate:"min=0,max=300"`
	ReportNeeds      []string `json:"report_needs" form:"report_needs" validate:"omitempty"`
}

type ReportResponse struct {
	ReportID         uint               `json:"report_id"`
	ReportDistrict   string             `json:"report_district"`
	ReportWaterLevel int                `json:"report_water_level_cm"`
	ReportAlertLevel model.AlertLevel   `json:"report_alert_level"`
	ReportNeeds      []string           `json:"report_needs"`
	ReportPhotoURL   string             `json:"report_photo_url"`
	ReportStatus     model.ReportStatus `json:"report_status"`
	CreatedAt        time.Time          `json:"created_at"`
}

type photoResolver func(*string) string

func ToReportResponse(m model.FloodReportModel, photoURL photoResolver) ReportResponse {
	return ReportResponse{
		ReportID:         m.ReportID,
		ReportDistrict:   m.ReportDistrict,
		ReportWaterLevel: m.ReportWaterLevel,
		ReportAlertLevel: m.ReportAlertLevel,
		ReportNeeds:      m.ReportNeeds,
		ReportPhotoURL:   photoURL(m.ReportPhotoPath),
		ReportStatus:     m.ReportStatus,
		CreatedAt:        m.CreatedAt,
	}
}
