package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Upsert crea o reemplaza el registro de inventario (cantidad absoluta).
func (r *InventoryRepo) Upsert(record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, now(), $4)
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		record.ProductID, record.WarehouseID, record.Quantity, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert inventory record: %w", err)
	}
	return nil
}

// Get devuelve el registro de inventario, o nil si no existe.
func (r *InventoryRepo) Get(productID, warehouseID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory record: %w", err)
	}
	return &rec, nil
}

// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE) y devuelve el registro,
// o uno en cero si aún no existe. Usar solo dentro de una transacción.
func (r *InventoryRepo) GetForUpdate(productID, warehouseID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.InventoryRecord{ProductID: productID, WarehouseID: warehouseID}, nil
		}
		return nil, fmt.Errorf("get inventory record for update: %w", err)
	}
	return &rec, nil
}

// ListForCompany devuelve el snapshot de inventario de la empresa unido con
// producto y bodega. INNER JOIN: una fila sin join resoluble no aparece, y el
// orden por fecha de creación del registro es determinista (el contrato de
// alertas exige preservar el orden del snapshot).
func (r *InventoryRepo) ListForCompany(ctx context.Context, companyID string) ([]repository.InventoryItem, error) {
	query := `
		SELECT i.product_id, p.name, p.sku, p.category, i.warehouse_id, w.name, i.quantity
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE p.company_id = $1
		ORDER BY i.created_at, i.product_id, i.warehouse_id`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list inventory for company: %w", err)
	}
	defer rows.Close()

	var items []repository.InventoryItem
	for rows.Next() {
		var item repository.InventoryItem
		if err := rows.Scan(
			&item.ProductID, &item.ProductName, &item.SKU, &item.Category,
			&item.WarehouseID, &item.WarehouseName, &item.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
