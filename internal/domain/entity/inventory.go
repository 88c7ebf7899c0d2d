package entity

import "time"

// InventoryRecord representa el stock actual de un producto en una bodega.
// Quantity es un entero y nunca es negativo (invariante del dominio).
type InventoryRecord struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}
