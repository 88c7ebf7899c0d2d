package repository

import (
	"context"

	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier y su
// asociación con productos (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)

	// LinkProduct asocia un proveedor a un producto (muchos-a-muchos).
	// Idempotente: asociar dos veces no es error.
	LinkProduct(productID, supplierID string) error

	// FindFirstByProduct devuelve el primer proveedor asociado al producto en
	// orden determinista (fecha de asociación, luego id), o nil si no hay.
	FindFirstByProduct(ctx context.Context, productID string) (*entity.Supplier, error)
}
