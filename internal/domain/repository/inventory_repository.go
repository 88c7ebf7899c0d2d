package repository

import (
	"context"

	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
)

// InventoryItem es una fila cruda del repositorio: un registro de inventario
// de la empresa ya unido con su producto y su bodega (INNER JOIN, por lo que
// los campos del join siempre vienen resueltos).
type InventoryItem struct {
	ProductID     string
	ProductName   string
	SKU           string
	Category      string
	WarehouseID   string
	WarehouseName string
	Quantity      int64
}

// InventoryRepository define el puerto para consultar/actualizar el stock por
// producto+bodega (DIP).
type InventoryRepository interface {
	// Upsert crea o reemplaza el registro de inventario (cantidad absoluta).
	Upsert(record *entity.InventoryRecord) error
	// Get devuelve el registro, o nil si no existe.
	Get(productID, warehouseID string) (*entity.InventoryRecord, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE) dentro de una tx y
	// devuelve el registro actual, o uno en cero si no existe.
	GetForUpdate(productID, warehouseID string) (*entity.InventoryRecord, error)

	// ListForCompany devuelve el snapshot completo de inventario de una
	// empresa unido con producto y bodega, en orden determinista de creación
	// del registro. Es la lectura que consume el evaluador de alertas.
	ListForCompany(ctx context.Context, companyID string) ([]InventoryItem, error)
}
