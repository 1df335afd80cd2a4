package service

import (
	"github.com/shopspring/decimal"

	"sigapbanjar_backend/internals/constants"
)

// Tabel biaya kerusakan hunian per kategori (Rp).
var housingLossTable = map[string]int64{
	constants.HouseFloodedHabitable: 1_500_000,
	constants.HouseFloodedEvacuated: 5_000_000,
	constants.HouseSeverelyDamaged:  25_000_000,
}

// Harga gagal panen per hektar (Rp).
var cropLossPerHa = decimal.NewFromInt(15_000_000)

// HousingLoss mengembalikan estimasi kerugian hunian.
// Kategori tak dikenal dihitung 0, tidak pernah gagal.
func HousingLoss(status string) int64 {
	return housingLossTable[status]
}

// CropLoss menghitung estimasi kerugian tanaman: luas * 15jt * faktor umur.
// Faktor: 0.3 (<30 hari), 0.6 (30–59 hari), 1.0 (≥60 hari).
// Hasil dipotong ke rupiah bulat supaya penjumlahan antar laporan konsisten.
// Input harus positif; validasi ada di caller.
func CropLoss(areaHa float64, cropAgeDays int) int64 {
	amount := decimal.NewFromFloat(areaHa).Mul(cropLossPerHa).Mul(cropAgeFactor(cropAgeDays))
	return amount.IntPart()
}

func cropAgeFactor(days int) decimal.Decimal {
	switch {
	case days < 30:
		return decimal.NewFromFloat(0.3)
	case days < 60:
		return decimal.NewFromFloat(0.6)
	default:
		return decimal.NewFromInt(1)
	}
}
