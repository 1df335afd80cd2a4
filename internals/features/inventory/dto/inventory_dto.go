package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"sigapbanjar_backend/internals/features/inventory/model"
)

type ItemCreateRequest struct {
	InventoryItemName  string  `json:"inventory_item_name" form:"inventory_item_name" validate:"required,max=120"`
	InventoryItemUnit  string  `json:"inventory_item_unit" form:"inventory_item_unit" validate:"required,max=30"`
	InventoryItemStock float64 `json:"inventory_item_stock" form:"inventory_item_stock" validate:"min=0"`
}

type ItemResponse struct {
	InventoryItemID    uint            `json:"inventory_item_id"`
	InventoryItemName  string          `json:"inventory_item_name"`
	InventoryItemStock decimal.Decimal `json:"inventory_item_stock"`
	InventoryItemUnit  string          `json:"inventory_item_unit"`
	CreatedAt          time.Time       `json:"created_at"`
}

func ToItemResponse(m model.InventoryItemModel) ItemResponse {
	return ItemResponse{
		InventoryItemID:    m.InventoryItemID,
		InventoryItemName:  m.InventoryItemName,
		InventoryItemStock: m.InventoryItemStock,
		InventoryItemUnit:  m.InventoryItemUnit,
		CreatedAt:          m.CreatedAt,
	}
}

type TransactionCreateRequest struct {
	TransactionItemID       uint    `json:"transaction_item_id" form:"transaction_item_id" validate:"required"`
	TransactionDirection    string  `json:"transaction_direction" form:"transaction_direction" validate:"required,oneof=masuk keluar"`
	TransactionQty          float64 `json:"transaction_qty" form:"transaction_qty" validate:"required,gt=0"`
	TransactionCounterparty string  `json:"transaction_counterparty" form:"transaction_counterparty" validate:"required,max=120"`
}

type TransactionResponse struct {
	TransactionID           uint                       `json:"transaction_id"`
	TransactionItemID       uint                       `json:"transaction_item_id"`
	TransactionDirection    model.TransactionDirection `json:"transaction_direction"`
	TransactionQty          decimal.Decimal            `json:"transaction_qty"`
	TransactionCounterparty string                     `json:"transaction_counterparty"`
	CreatedAt               time.Time                  `json:"created_at"`
}

func ToTransactionResponse(m model.InventoryTransactionModel) TransactionResponse {
	return TransactionResponse{
		TransactionID:           m.TransactionID,
		TransactionItemID:       m.TransactionItemID,
		TransactionDirection:    m.TransactionDirection,
		TransactionQty:          m.TransactionQty,
		TransactionCounterparty: m.TransactionCounterparty,
		CreatedAt:               m.CreatedAt,
	}
}
