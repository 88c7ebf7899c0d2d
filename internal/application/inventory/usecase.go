package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/domain"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

// AdjustStockUseCase registra ajustes de stock (entradas y salidas) de forma
// transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type AdjustStockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	cache       AlertsCache
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, productRepo repository.ProductRepository, cache AlertsCache) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, productRepo: productRepo, cache: cache}
}

// Adjust aplica un delta al stock de producto+bodega. La cantidad resultante
// nunca puede ser negativa (ErrInsufficientStock). El producto debe existir y
// pertenecer a la empresa del llamador.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, companyID string, in dto.AdjustStockRequest) (*dto.InventoryRecordResponse, error) {
	if in.ProductID == "" || in.WarehouseID == "" || in.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	var out dto.InventoryRecordResponse

	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error {
		// Bloquea la fila para que dos ajustes concurrentes no pierdan escrituras.
		record, err := invRepo.GetForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		newQty := record.Quantity + in.Delta
		if newQty < 0 {
			return domain.ErrInsufficientStock
		}
		record.Quantity = newQty
		record.UpdatedAt = now
		if err := invRepo.Upsert(record); err != nil {
			return err
		}
		out = dto.InventoryRecordResponse{
			ProductID:   record.ProductID,
			WarehouseID: record.WarehouseID,
			Quantity:    record.Quantity,
			UpdatedAt:   record.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil && companyID != "" {
		uc.cache.Invalidate(ctx, companyID)
	}
	return &out, nil
}
