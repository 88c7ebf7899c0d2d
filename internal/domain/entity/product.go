package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// Category es la etiqueta de clasificación usada por la política de umbrales
// de stock bajo ("electronics", "grocery", o vacía). El stock se maneja por
// bodega en InventoryRecord.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
