package dto

import reportModel "sigapbanjar_backend/internals/features/reports/model"

// Metrik dashboard publik. Selalu dihitung ulang dari kondisi tabel saat
// request, tidak ada cache.
type DashboardResponse struct {
	TotalHouseholds       int64                  `json:"total_households"`
	TotalPopulation       int64                  `json:"total_population"`
	MaxWaterLevelCM       int                    `json:"max_water_level_cm"`
	RegionStatus          reportModel.AlertLevel `json:"region_status"`
	VerifiedReportCount   int64                  `json:"verified_report_count"`
	HouseholdsPerDistrict map[string]int64       `json:"households_per_district"`
	HousingStatusCounts   map[string]int64       `json:"housing_status_counts"`
}

// Hasil analisis kerugian.
type AnalysisResponse struct {
	TotalLoss          int64            `json:"total_loss"`
	HousingLossTotal   int64            `json:"housing_loss_total"`
	CropLossTotal      int64            `json:"crop_loss_total"`
	LossPerDistrict    map[string]int64 `json:"loss_per_district"`
	AffectedHouseholds int64            `json:"affected_households"`
	AffectedPopulation int64            `json:"affected_population"`
	// NIK pemilik lahan yang tidak ada di registry KK: kerugiannya tetap
	// dihitung tapi jiwanya tidak bisa dihitung. Dimunculkan supaya celah
	// join parsial ini terlihat, tidak diam-diam.
	UnmatchedNIKCount int64 `json:"unmatched_nik_count"`
}
