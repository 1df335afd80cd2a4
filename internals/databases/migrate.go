package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	householdModel "sigapbanjar_backend/internals/features/households/model"
	inventoryModel "sigapbanjar_backend/internals/features/inventory/model"
	reportModel "sigapbanjar_backend/internals/features/reports/model"
	weatherModel "sigapbanjar_backend/internals/features/weather/model"
)

type SchemaMigration struct {
	Version   string    `gorm:"column:version;primaryKey"`
	AppliedAt time.Time `gorm:"column:applied_at"`
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

type migrationStep struct {
	Version string
	Run     func(db *gorm.DB) error
}

// Skema hanya berevolusi aditif: kolom nullable baru ditambah di step baru,
// tidak pernah rename atau drop.
var migrationSteps = []migrationStep{
	{
		Version: "001_core_tables",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&householdModel.HouseholdModel{},
				&householdModel.AgriculturalParcelModel{},
				&reportModel.FloodReportModel{},
			)
		},
	},
	{
		Version: "002_inventory_ledger",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&inventoryModel.InventoryItemModel{},
				&inventoryModel.InventoryTransactionModel{},
			)
		},
	},
	{
		Version: "003_parcel_geo_photo",
		Run: func(db *gorm.DB) error {
			m := db.Migrator()
			for _, col := range []string{"ParcelLatitude", "ParcelLongitude", "ParcelPhotoPath"} {
				if !m.HasColumn(&householdModel.AgriculturalParcelModel{}, col) {
					if err := m.AddColumn(&householdModel.AgriculturalParcelModel{}, col); err != nil {
						return err
					}
				}
			}
			if !m.HasColumn(&reportModel.FloodReportModel{}, "ReportPhotoPath") {
				return m.AddColumn(&reportModel.FloodReportModel{}, "ReportPhotoPath")
			}
			return nil
		},
	},
	{
		Version: "004_weather_snapshots",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(&weatherModel.WeatherSnapshotModel{})
		},
	},
}

// Migrate menjalankan daftar migrasi berversi sekali saat startup.
// Setiap step idempoten dan dicatat di schema_migrations.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("siapkan schema_migrations: %w", err)
	}
	for _, step := range migrationSteps {
		var count int64
		if err := db.Model(&SchemaMigration{}).Where("version = ?", step.Version).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		log.Printf("[INFO] Menjalankan migrasi %s...", step.Version)
		if err := step.Run(db); err != nil {
			return fmt.Errorf("migrasi %s gagal: %w", step.Version, err)
		}
		if err := db.Create(&SchemaMigration{Version: step.Version, AppliedAt: time.Now()}).Error; err != nil {
			return err
		}
		log.Printf("[INFO] Migrasi %s selesai ✅", step.Version)
	}
	return nil
}
