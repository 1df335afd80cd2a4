package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sigapbanjar_backend/internals/features/inventory/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.InventoryItemModel{}, &model.InventoryTransactionModel{}))
	return db
}

func newApp(db *gorm.DB) *fiber.App {
	ctrl := NewInventoryController(db)
	app := fiber.New()
	app.Post("/items", ctrl.CreateItem)
	app.Post("/transactions", ctrl.CreateTransaction)
	return app
}

func post(t *testing.T, app *fiber.App, path string, payload interface{}) int {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func seedItem(t *testing.T, app *fiber.App, db *gorm.DB, stock float64) model.InventoryItemModel {
	t.Helper()
	status := post(t, app, "/items", map[string]interface{}{
		"inventory_item_name":  "Beras",
		"inventory_item_unit":  "kg",
		"inventory_item_stock": stock,
	})
	require.Equal(t, fiber.StatusCreated, status)

	var item model.InventoryItemModel
	require.NoError(t, db.Where("inventory_item_name = ?", "Beras").First(&item).Error)
	return item
}

func TestOutbound_OverStockRejectedWithoutLedgerRow(t *testing.T) {
	db := openTestDB(t)
	app := newApp(db)
	item := seedItem(t, app, db, 10)

	status := post(t, app, "/transactions", map[string]interface{}{
		"transaction_item_id":      item.InventoryItemID,
		"transaction_direction":    "keluar",
		"transaction_qty":          12.0,
		"transaction_counterparty": "Posko Martapura",
	})
	require.Equal(t, fiber.StatusConflict, status)

	// stok dan ledger tidak berubah
	var after model.InventoryItemModel
	require.NoError(t, db.First(&after, item.InventoryItemID).Error)
	require.True(t, after.InventoryItemStock.Equal(decimal.NewFromInt(10)),
		"stok berubah jadi %s", after.InventoryItemStock)

	var ledgerCount int64
	require.NoError(t, db.Model(&model.InventoryTransactionModel{}).Count(&ledgerCount).Error)
	require.Equal(t, int64(0), ledgerCount)
}

func TestOutbound_ExactStockLeavesZero(t *testing.T) {
	db := openTestDB(t)
	app := newApp(db)
	item := seedItem(t, app, db, 10)

	status := post(t, app, "/transactions", map[string]interface{}{
		"transaction_item_id":      item.InventoryItemID,
		"transaction_direction":    "keluar",
		"transaction_qty":          10.0,
		"transaction_counterparty": "Posko Sungai Tabuk",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var after model.InventoryItemModel
	require.NoError(t, db.First(&after, item.InventoryItemID).Error)
	require.True(t, after.InventoryItemStock.IsZero(), "stok seharusnya 0, dapat %s", after.InventoryItemStock)

	var ledgerCount int64
	require.NoError(t, db.Model(&model.InventoryTransactionModel{}).Count(&ledgerCount).Error)
	require.Equal(t, int64(1), ledgerCount)
}

func TestInbound_IncrementsStockAndAppendsLedger(t *testing.T) {
	db := openTestDB(t)
	app := newApp(db)
	item := seedItem(t, app, db, 2.5)

	status := post(t, app, "/transactions", map[string]interface{}{
		"transaction_item_id":      item.InventoryItemID,
		"transaction_direction":    "masuk",
		"transaction_qty":          7.5,
		"transaction_counterparty": "BPBD Provinsi",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var after model.InventoryItemModel
	require.NoError(t, db.First(&after, item.InventoryItemID).Error)
	require.True(t, after.InventoryItemStock.Equal(decimal.NewFromInt(10)))

	var trx model.InventoryTransactionModel
	require.NoError(t, db.First(&trx).Error)
	require.Equal(t, model.TransactionMasuk, trx.TransactionDirection)
	require.True(t, trx.TransactionQty.Equal(decimal.NewFromFloat(7.5)))
}

func TestCreateItem_DuplicateNameRejected(t *testing.T) {
	db := openTestDB(t)
	app := newApp(db)
	seedItem(t, app, db, 5)

	status := post(t, app, "/items", map[string]interface{}{
		"inventory_item_name":  "Beras",
		"inventory_item_unit":  "kg",
		"inventory_item_stock": 1.0,
	})
	require.Equal(t, fiber.StatusConflict, status)
}

func TestOutbound_UnknownItemNotFound(t *testing.T) {
	db := openTestDB(t)
	app := newApp(db)

	status := post(t, app, "/transactions", map[string]interface{}{
		"transaction_item_id":      999,
		"transaction_direction":    "keluar",
		"transaction_qty":          1.0,
		"transaction_counterparty": "Posko",
	})
	require.Equal(t, fiber.StatusNotFound, status)
}
