package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	householdModel "sigapbanjar_backend/internals/features/households/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db
}

func TestMigrate_AppliesAllSteps(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	var applied []SchemaMigration
	require.NoError(t, db.Order("version ASC").Find(&applied).Error)
	require.Len(t, applied, len(migrationSteps))
	for i, step := range migrationSteps {
		require.Equal(t, step.Version, applied[i].Version)
	}

	m := db.Migrator()
	for _, table := range []string{"household", "agricultural_parcel", "flood_report", "inventory_item", "inventory_transaction", "weather_snapshot"} {
		require.True(t, m.HasTable(table), "tabel %s belum dibuat", table)
	}
	require.True(t, m.HasColumn(&householdModel.AgriculturalParcelModel{}, "ParcelLatitude"))
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var count int64
	require.NoError(t, db.Model(&SchemaMigration{}).Count(&count).Error)
	require.Equal(t, int64(len(migrationSteps)), count)
}
