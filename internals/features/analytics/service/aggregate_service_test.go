package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sigapbanjar_backend/internals/constants"
	householdModel "sigapbanjar_backend/internals/features/households/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&householdModel.HouseholdModel{},
		&householdModel.AgriculturalParcelModel{},
	))
	return db
}

func TestComputeLossAnalysis_HouseholdWithParcel(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&householdModel.HouseholdModel{
		HouseholdNIK:           "6303011234567890",
		HouseholdHeadName:      "Ahmad Fauzi",
		HouseholdDistrict:      "Martapura",
		HouseholdMemberCount:   4,
		HouseholdHousingStatus: constants.HouseSeverelyDamaged,
	}).Error)
	require.NoError(t, db.Create(&householdModel.AgriculturalParcelModel{
		ParcelOwnerNIK:    "6303011234567890",
		ParcelDistrict:    "Martapura",
		ParcelAreaHa:      2,
		ParcelCropAgeDays: 90,
	}).Error)

	resp, err := ComputeLossAnalysis(db)
	require.NoError(t, err)

	// rumah Rusak Berat 25 juta + sawah 2 ha umur 90 hari 30 juta
	require.Equal(t, int64(25_000_000), resp.HousingLossTotal)
	require.Equal(t, int64(30_000_000), resp.CropLossTotal)
	require.Equal(t, int64(55_000_000), resp.TotalLoss)
	require.Equal(t, int64(55_000_000), resp.LossPerDistrict["Martapura"])

	// lahan dan KK milik NIK yang sama dihitung satu KK terdampak
	require.Equal(t, int64(1), resp.AffectedHouseholds)
	require.Equal(t, int64(4), resp.AffectedPopulation)
	require.Equal(t, int64(0), resp.UnmatchedNIKCount)
}

func TestComputeLossAnalysis_UnmatchedParcelNIK(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&householdModel.HouseholdModel{
		HouseholdNIK:           "6303019999888877",
		HouseholdHeadName:      "Siti Rahmah",
		HouseholdDistrict:      "Gambut",
		HouseholdMemberCount:   3,
		HouseholdHousingStatus: constants.HouseFloodedEvacuated,
	}).Error)
	// pemilik lahan ini tidak pernah mendaftar di registry KK
	require.NoError(t, db.Create(&householdModel.AgriculturalParcelModel{
		ParcelOwnerNIK:    "6303010000000001",
		ParcelDistrict:    "Sungai Tabuk",
		ParcelAreaHa:      1,
		ParcelCropAgeDays: 20,
	}).Error)

	resp, err := ComputeLossAnalysis(db)
	require.NoError(t, err)

	require.Equal(t, int64(5_000_000), resp.HousingLossTotal)
	require.Equal(t, int64(4_500_000), resp.CropLossTotal)
	require.Equal(t, int64(9_500_000), resp.TotalLoss)
	require.Equal(t, int64(5_000_000), resp.LossPerDistrict["Gambut"])
	require.Equal(t, int64(4_500_000), resp.LossPerDistrict["Sungai Tabuk"])

	// kerugian lahan tetap masuk, tapi jiwanya tidak bisa dihitung
	require.Equal(t, int64(1), resp.AffectedHouseholds)
	require.Equal(t, int64(3), resp.AffectedPopulation)
	require.Equal(t, int64(1), resp.UnmatchedNIKCount)
}

func TestComputeLossAnalysis_EmptyTables(t *testing.T) {
	db := openTestDB(t)

	resp, err := ComputeLossAnalysis(db)
	require.NoError(t, err)
	require.Equal(t, int64(0), resp.TotalLoss)
	require.Equal(t, int64(0), resp.AffectedHouseholds)
	require.Empty(t, resp.LossPerDistrict)
}
