package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sigapbanjar_backend/internals/features/inventory/dto"
	"sigapbanjar_backend/internals/features/inventory/model"
	helper "sigapbanjar_backend/internals/helpers"
)

var errStokKurang = errors.New("stok tidak cukup")

type InventoryController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db, validate: validator.New()}
}

// CreateItem mendaftarkan jenis bantuan baru. Nama item unik.
func (ctrl *InventoryController) CreateItem(c *fiber.Ctx) error {
	var req dto.ItemCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	item := model.InventoryItemModel{
		InventoryItemName:  req.InventoryItemName,
		InventoryItemStock: decimal.NewFromFloat(req.InventoryItemStock),
		InventoryItemUnit:  req.InventoryItemUnit,
		CreatedAt:          time.Now(),
	}

	if err := ctrl.DB.Create(&item).Error; err != nil {
		return helper.StorageError(c, err,
			"Item "+req.InventoryItemName+" sudah terdaftar",
			"Item tidak ditemukan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Item tersimpan", dto.ToItemResponse(item))
}

// GetItems menampilkan stok seluruh item bantuan.
func (ctrl *InventoryController) GetItems(c *fiber.Ctx) error {
	var items []model.InventoryItemModel
	if err := ctrl.DB.Order("inventory_item_name ASC").Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data stok")
	}

	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToItemResponse(it))
	}
	return helper.Success(c, "Daftar stok bantuan", out)
}

// CreateTransaction mencatat mutasi stok. Pengeluaran memakai satu UPDATE
// bersyarat (stok >= qty) di dalam transaksi DB, sehingga dua pengeluaran
// bersamaan tidak bisa membuat stok minus. Ledger append-only: baris hanya
// ditulis bila mutasi stoknya berhasil.
func (ctrl *InventoryController) CreateTransaction(c *fiber.Ctx) error {
	var req dto.TransactionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	direction := model.TransactionDirection(req.TransactionDirection)
	trx := model.InventoryTransactionModel{
		TransactionItemID:       req.TransactionItemID,
		TransactionDirection:    direction,
		TransactionQty:          decimal.NewFromFloat(req.TransactionQty),
		TransactionCounterparty: req.TransactionCounterparty,
		CreatedAt:               time.Now(),
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var item model.InventoryItemModel
		if err := tx.First(&item, req.TransactionItemID).Error; err != nil {
			return err
		}

		if direction == model.TransactionKeluar {
			res := tx.Model(&model.InventoryItemModel{}).
				Where("inventory_item_id = ? AND inventory_item_stock >= ?", item.InventoryItemID, req.TransactionQty).
				Update("inventory_item_stock", gorm.Expr("inventory_item_stock - ?", req.TransactionQty))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return errStokKurang
			}
		} else {
			if err := tx.Model(&model.InventoryItemModel{}).
				Where("inventory_item_id = ?", item.InventoryItemID).
				Update("inventory_item_stock", gorm.Expr("inventory_item_stock + ?", req.TransactionQty)).Error; err != nil {
				return err
			}
		}

		return tx.Create(&trx).Error
	})
	if err != nil {
		if errors.Is(err, errStokKurang) {
			return helper.Error(c, fiber.StatusConflict, "Stok tidak cukup untuk pengeluaran ini")
		}
		return helper.StorageError(c, err, "Transaksi duplikat", "Item tidak ditemukan")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi tercatat", dto.ToTransactionResponse(trx))
}

// GetTransactions menampilkan riwayat mutasi, bisa difilter per item.
func (ctrl *InventoryController) GetTransactions(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.InventoryTransactionModel{}).Order("created_at DESC")
	if itemID := c.QueryInt("item_id"); itemID > 0 {
		q = q.Where("transaction_item_id = ?", itemID)
	}

	var trxs []model.InventoryTransactionModel
	if err := q.Find(&trxs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat transaksi")
	}

	out := make([]dto.TransactionResponse, 0, len(trxs))
	for _, t := range trxs {
		out = append(out, dto.ToTransactionResponse(t))
	}
	return helper.Success(c, "Riwayat transaksi", out)
}
