package inventory

import (
	"context"

	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad: si fn retorna error se
// hace Rollback de todo lo escrito; solo si fn termina bien se hace Commit.
// Lo usan la creación de producto (producto + inventario inicial, todo o
// nada) y los ajustes de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error) error
}

// AlertsCache cachea la respuesta de alertas de stock bajo por empresa.
// Best-effort: un fallo de cache nunca falla la petición. La implementación
// nula (sin Redis configurado) siempre falla el Get y descarta el Set.
type AlertsCache interface {
	Get(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, bool)
	Set(ctx context.Context, companyID string, resp *dto.LowStockAlertsResponse)
	Invalidate(ctx context.Context, companyID string)
}
