package inventory

import (
	"context"

	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/alert"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

// LowStockUseCase produce las alertas de stock bajo de una empresa: lee el
// snapshot de inventario (join producto + bodega), lo valida, y delega la
// clasificación al evaluador de dominio. Solo lecturas; sin efectos.
type LowStockUseCase struct {
	invRepo      repository.InventoryRepository
	supplierRepo repository.SupplierRepository
	evaluator    *alert.Evaluator
	cache        AlertsCache
}

// NewLowStockUseCase construye el caso de uso. cache puede ser nil.
func NewLowStockUseCase(
	invRepo repository.InventoryRepository,
	supplierRepo repository.SupplierRepository,
	policy alert.ThresholdPolicy,
	cache AlertsCache,
) *LowStockUseCase {
	return &LowStockUseCase{
		invRepo:      invRepo,
		supplierRepo: supplierRepo,
		evaluator:    alert.NewEvaluator(policy),
		cache:        cache,
	}
}

// GetAlerts devuelve las alertas de stock bajo de la empresa, en el mismo
// orden relativo del snapshot. Un snapshot malformado falla la petición
// completa: nunca se saltan filas en silencio.
func (uc *LowStockUseCase) GetAlerts(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, error) {
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, companyID); ok {
			return cached, nil
		}
	}

	rows, err := uc.invRepo.ListForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	snapshot := make([]alert.SnapshotItem, 0, len(rows))
	for _, r := range rows {
		snapshot = append(snapshot, alert.SnapshotItem{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			SKU:           r.SKU,
			Category:      r.Category,
			WarehouseID:   r.WarehouseID,
			WarehouseName: r.WarehouseName,
			Quantity:      r.Quantity,
		})
	}
	if err := alert.ValidateSnapshot(snapshot); err != nil {
		return nil, err
	}

	alerts, err := uc.evaluator.Evaluate(snapshot, uc.resolveSupplier(ctx))
	if err != nil {
		return nil, err
	}

	resp := &dto.LowStockAlertsResponse{
		Alerts:      toAlertDTOs(alerts),
		TotalAlerts: len(alerts),
	}
	if uc.cache != nil {
		uc.cache.Set(ctx, companyID, resp)
	}
	return resp, nil
}

// resolveSupplier adapta el repositorio de proveedores al resolver que
// consume el evaluador (primer proveedor asociado, o nil).
func (uc *LowStockUseCase) resolveSupplier(ctx context.Context) alert.SupplierResolver {
	return func(productID string) (*alert.SupplierSummary, error) {
		s, err := uc.supplierRepo.FindFirstByProduct(ctx, productID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, nil
		}
		return &alert.SupplierSummary{
			ID:           s.ID,
			Name:         s.Name,
			ContactEmail: s.ContactEmail,
		}, nil
	}
}

func toAlertDTOs(alerts []alert.Alert) []dto.StockAlertDTO {
	out := make([]dto.StockAlertDTO, 0, len(alerts))
	for _, a := range alerts {
		item := dto.StockAlertDTO{
			ProductID:         a.ProductID,
			ProductName:       a.ProductName,
			SKU:               a.SKU,
			WarehouseID:       a.WarehouseID,
			WarehouseName:     a.WarehouseName,
			CurrentStock:      a.CurrentStock,
			Threshold:         a.Threshold,
			DaysUntilStockout: a.DaysUntilStockout,
		}
		if a.Supplier != nil {
			item.Supplier = &dto.SupplierSummaryDTO{
				ID:           a.Supplier.ID,
				Name:         a.Supplier.Name,
				ContactEmail: a.Supplier.ContactEmail,
			}
		}
		out = append(out, item)
	}
	return out
}
