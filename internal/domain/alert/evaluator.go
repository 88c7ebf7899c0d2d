package alert

import (
	"errors"
	"fmt"
)

// ErrSnapshotMalformed indica un snapshot que viola las precondiciones del
// evaluador (join de producto/bodega incompleto o cantidad negativa). El
// llamador debe fallar la petición completa: saltar filas malformadas en
// silencio ocultaría riesgo real de quiebre de stock.
var ErrSnapshotMalformed = errors.New("snapshot de inventario malformado")

// SnapshotItem es una fila del snapshot de inventario de una empresa, ya
// unida con su producto y su bodega. Entrada de solo lectura del evaluador.
type SnapshotItem struct {
	ProductID     string
	ProductName   string
	SKU           string
	Category      string
	WarehouseID   string
	WarehouseName string
	Quantity      int64
}

// SupplierSummary es el resumen de contacto de proveedor adjunto a una alerta.
type SupplierSummary struct {
	ID           string
	Name         string
	ContactEmail string
}

// SupplierResolver resuelve el proveedor asociado a un producto, o nil si no
// tiene. A lo sumo un proveedor por producto (primer match determinista).
type SupplierResolver func(productID string) (*SupplierSummary, error)

// Alert es una alerta de stock bajo. Valor efímero: no se persiste.
type Alert struct {
	ProductID         string
	ProductName       string
	SKU               string
	WarehouseID       string
	WarehouseName     string
	CurrentStock      int64
	Threshold         int64
	DaysUntilStockout int64
	Supplier          *SupplierSummary
}

// Evaluator clasifica el snapshot de inventario de una empresa en alertas de
// stock bajo (servicio de dominio puro: sin I/O, sin estado, sin mutación de
// entradas; invocable concurrentemente sobre snapshots independientes).
type Evaluator struct {
	policy ThresholdPolicy
}

// NewEvaluator construye el evaluador con la política de umbrales inyectada.
func NewEvaluator(policy ThresholdPolicy) *Evaluator {
	return &Evaluator{policy: policy}
}

// Evaluate recorre el snapshot en orden y emite una alerta por cada registro
// cuya cantidad es estrictamente menor que el umbral resuelto para la
// categoría de su producto. El orden de salida es el orden del snapshot.
//
// DaysUntilStockout = Quantity / 2 (división entera ≡ floor para cantidades
// no negativas). Es una estimación lineal provisional sin base en consumo
// real; no inventar un modelo de pronóstico sin requisitos que lo definan.
//
// Precondición: snapshot bien formado (ver ValidateSnapshot). El evaluador
// asume joins resueltos y cantidades no negativas.
func (e *Evaluator) Evaluate(snapshot []SnapshotItem, resolve SupplierResolver) ([]Alert, error) {
	alerts := make([]Alert, 0, len(snapshot))
	for _, item := range snapshot {
		threshold := e.policy.Resolve(item.Category)
		if item.Quantity >= threshold {
			continue
		}

		var supplier *SupplierSummary
		if resolve != nil {
			s, err := resolve(item.ProductID)
			if err != nil {
				return nil, fmt.Errorf("resolver proveedor de %s: %w", item.ProductID, err)
			}
			supplier = s
		}

		alerts = append(alerts, Alert{
			ProductID:         item.ProductID,
			ProductName:       item.ProductName,
			SKU:               item.SKU,
			WarehouseID:       item.WarehouseID,
			WarehouseName:     item.WarehouseName,
			CurrentStock:      item.Quantity,
			Threshold:         threshold,
			DaysUntilStockout: item.Quantity / 2,
			Supplier:          supplier,
		})
	}
	return alerts, nil
}

// ValidateSnapshot verifica las precondiciones del evaluador: cada fila tiene
// producto y bodega resueltos y cantidad no negativa. El llamador debe
// invocarla antes de Evaluate y fallar la petición si retorna error.
func ValidateSnapshot(snapshot []SnapshotItem) error {
	for i, item := range snapshot {
		if item.ProductID == "" || item.WarehouseID == "" {
			return fmt.Errorf("%w: fila %d sin join de producto o bodega", ErrSnapshotMalformed, i)
		}
		if item.Quantity < 0 {
			return fmt.Errorf("%w: fila %d con cantidad negativa %d", ErrSnapshotMalformed, i, item.Quantity)
		}
	}
	return nil
}
