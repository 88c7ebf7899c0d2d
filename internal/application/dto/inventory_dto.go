package dto

import "time"

// AdjustStockRequest body para POST /api/inventory/adjustments.
// Delta puede ser positivo (entrada) o negativo (salida); el resultado nunca
// puede quedar por debajo de cero.
type AdjustStockRequest struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Delta       int64  `json:"delta"`
}

// InventoryRecordResponse salida de un registro de inventario.
type InventoryRecordResponse struct {
	ProductID   string    `json:"product_id"`
	WarehouseID string    `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}
