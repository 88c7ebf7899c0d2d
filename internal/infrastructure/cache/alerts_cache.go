package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	"github.com/tu-usuario/stock-alerts-api/internal/application/inventory"
	"github.com/tu-usuario/stock-alerts-api/pkg/logger"
)

var _ inventory.AlertsCache = (*AlertsCache)(nil)

// TTL corto: las alertas son una lectura derivada que se invalida además en
// cada escritura de producto/stock.
const alertsTTL = 5 * time.Minute

// NewRedis crea y valida un cliente go-redis a partir de una URL
// (redis://[:password@]host:port/db).
func NewRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// AlertsCache cachea la respuesta de alertas de stock bajo por empresa en
// Redis. Best-effort: cualquier fallo de Redis se registra en debug y la
// petición sigue contra la BD.
type AlertsCache struct {
	rdb *redis.Client
	log *logger.Logger
}

// NewAlertsCache construye el cache sobre un cliente redis ya conectado.
func NewAlertsCache(rdb *redis.Client, log *logger.Logger) *AlertsCache {
	return &AlertsCache{rdb: rdb, log: log.Component("alerts-cache")}
}

func alertsKey(companyID string) string {
	return "alerts:low-stock:" + companyID
}

// Get devuelve la respuesta cacheada para la empresa, si existe.
func (c *AlertsCache) Get(ctx context.Context, companyID string) (*dto.LowStockAlertsResponse, bool) {
	val, err := c.rdb.Get(ctx, alertsKey(companyID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug().Err(err).Str("company_id", companyID).Msg("cache get falló")
		}
		return nil, false
	}
	var resp dto.LowStockAlertsResponse
	if err := json.Unmarshal([]byte(val), &resp); err != nil {
		c.log.Debug().Err(err).Str("company_id", companyID).Msg("cache con payload corrupto")
		return nil, false
	}
	return &resp, true
}

// Set guarda la respuesta con TTL.
func (c *AlertsCache) Set(ctx context.Context, companyID string, resp *dto.LowStockAlertsResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, alertsKey(companyID), data, alertsTTL).Err(); err != nil {
		c.log.Debug().Err(err).Str("company_id", companyID).Msg("cache set falló")
	}
}

// Invalidate borra la entrada de la empresa (tras crear producto o ajustar stock).
func (c *AlertsCache) Invalidate(ctx context.Context, companyID string) {
	if err := c.rdb.Del(ctx, alertsKey(companyID)).Err(); err != nil {
		c.log.Debug().Err(err).Str("company_id", companyID).Msg("cache invalidate falló")
	}
}
