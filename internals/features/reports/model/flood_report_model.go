package model

import (
	"time"

	"gorm.io/datatypes"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusVerified ReportStatus = "verified"
	ReportStatusClosed   ReportStatus = "closed"
)

type AlertLevel string

const (
	AlertAman    AlertLevel = "Aman"
	AlertWaspada AlertLevel = "Waspada"
	AlertBahaya  AlertLevel = "Bahaya"
)

// ClassifyWaterLevel menentukan level siaga dari tinggi air (cm).
// Batas eksklusif: >150 Bahaya, >50 Waspada, sisanya Aman.
func ClassifyWaterLevel(cm int) AlertLevel {
	switch {
	case cm > 150:
		return AlertBahaya
	case cm > 50:
		return AlertWaspada
	default:
		return AlertAman
	}
}

type FloodReportModel struct {
	ReportID         uint                        `json:"report_id" gorm:"column:report_id;primaryKey"`
	ReportDistrict   string                      `json:"report_district" gorm:"column:report_district;not null"`
	ReportWaterLevel int                         `json:"report_water_level_cm" gorm:"column:report_water_level_cm;not null"`
	ReportAlertLevel AlertLevel                  `json:"report_alert_level" gorm:"column:report_alert_level;not null"`
	ReportNeeds      datatypes.JSONSlice[string] `json:"report_needs" gorm:"column:report_needs"`
	ReportPhotoPath  *string                     `json:"report_photo_path,omitempty" gorm:"column:report_photo_path"`
	ReportStatus     ReportStatus                `json:"report_status" gorm:"column:report_status;not null;default:pending"`
	CreatedAt        time.Time                   `json:"created_at" gorm:"column:created_at"`
}

func (FloodReportModel) TableName() string {
	return "flood_report"
}
