package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionDirection string

const (
	TransactionMasuk  TransactionDirection = "masuk"
	TransactionKeluar TransactionDirection = "keluar"
)

type InventoryItemModel struct {
	InventoryItemID    uint            `json:"inventory_item_id" gorm:"column:inventory_item_id;primaryKey"`
	InventoryItemName  string          `json:"inventory_item_name" gorm:"column:inventory_item_name;uniqueIndex;not null"`
	InventoryItemStock decimal.Decimal `json:"inventory_item_stock" gorm:"column:inventory_item_stock;type:decimal(20,2);not null"`
	InventoryItemUnit  string          `json:"inventory_item_unit" gorm:"column:inventory_item_unit;not null"`
	CreatedAt          time.Time       `json:"created_at" gorm:"column:created_at"`
}

func (InventoryItemModel) TableName() string {
	return "inventory_item"
}

// Ledger mutasi stok, append-only: tidak pernah diubah atau dihapus.
type InventoryTransactionModel struct {
	TransactionID           uint                 `json:"transaction_id" gorm:"column:transaction_id;primaryKey"`
	TransactionItemID       uint                 `json:"transaction_item_id" gorm:"column:transaction_item_id;index;not null"`
	TransactionDirection    TransactionDirection `json:"transaction_direction" gorm:"column:transaction_direction;not null"`
	TransactionQty          decimal.Decimal      `json:"transaction_qty" gorm:"column:transaction_qty;type:decimal(20,2);not null"`
	TransactionCounterparty string               `json:"transaction_counterparty" gorm:"column:transaction_counterparty;not null"`
	CreatedAt               time.Time            `json:"created_at" gorm:"column:created_at"`
}

func (InventoryTransactionModel) TableName() string {
	return "inventory_transaction"
}
