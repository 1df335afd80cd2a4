package service

import (
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/features/analytics/dto"
	householdModel "sigapbanjar_backend/internals/features/households/model"
)

// ComputeLossAnalysis menghitung ulang estimasi kerugian dari kondisi tabel
// saat ini. Kerugian hunian di-lookup per kategori KK, kerugian tanaman
// dihitung per lahan. NIK pemilik lahan yang tidak ada di registry tetap
// menyumbang kerugian tapi tidak menyumbang jiwa (join parsial, disengaja
// dan dilaporkan lewat UnmatchedNIKCount).
func ComputeLossAnalysis(db *gorm.DB) (dto.AnalysisResponse, error) {
	resp := dto.AnalysisResponse{
		LossPerDistrict: make(map[string]int64),
	}

	var households []householdModel.HouseholdModel
	if err := db.Find(&households).Error; err != nil {
		return resp, err
	}

	var parcels []householdModel.AgriculturalParcelModel
	if err := db.Find(&parcels).Error; err != nil {
		return resp, err
	}

	registryNIK := make(map[string]int, len(households))
	affected := make(map[string]struct{})

	for _, h := range households {
		loss := HousingLoss(h.HouseholdHousingStatus)
		resp.HousingLossTotal += loss
		resp.LossPerDistrict[h.HouseholdDistrict] += loss
		registryNIK[h.HouseholdNIK] = h.HouseholdMemberCount
		affected[h.HouseholdNIK] = struct{}{}
	}

	unmatched := make(map[string]struct{})
	for _, p := range parcels {
		loss := CropLoss(p.ParcelAreaHa, p.ParcelCropAgeDays)
		resp.CropLossTotal += loss
		resp.LossPerDistrict[p.ParcelDistrict] += loss
		if _, ok := registryNIK[p.ParcelOwnerNIK]; ok {
			affected[p.ParcelOwnerNIK] = struct{}{}
		} else {
			unmatched[p.ParcelOwnerNIK] = struct{}{}
		}
	}

	resp.TotalLoss = resp.HousingLossTotal + resp.CropLossTotal
	resp.AffectedHouseholds = int64(len(affected))
	resp.UnmatchedNIKCount = int64(len(unmatched))
	for nik := range affected {
		resp.AffectedPopulation += int64(registryNIK[nik])
	}

	return resp, nil
}
