package alert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/alert"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// testPolicy replica la tabla de ejemplo: electronics=20, grocery=50, default=10.
func testPolicy(t *testing.T) alert.ThresholdPolicy {
	t.Helper()
	p, err := alert.NewThresholdPolicy(map[string]int64{
		"electronics": 20,
		"grocery":     50,
	}, 10)
	require.NoError(t, err)
	return p
}

func item(productID, category string, qty int64) alert.SnapshotItem {
	return alert.SnapshotItem{
		ProductID:     productID,
		ProductName:   "Producto " + productID,
		SKU:           "SKU-" + productID,
		Category:      category,
		WarehouseID:   "wh-1",
		WarehouseName: "Bodega Central",
		Quantity:      qty,
	}
}

// noSupplier es un resolver que nunca encuentra proveedor.
func noSupplier(string) (*alert.SupplierSummary, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Política de umbrales
// ──────────────────────────────────────────────────────────────────────────────

func TestNewThresholdPolicy_DefaultObligatorio(t *testing.T) {
	_, err := alert.NewThresholdPolicy(nil, 0)
	assert.Error(t, err, "default cero debe rechazarse")

	_, err = alert.NewThresholdPolicy(map[string]int64{"x": 5}, -1)
	assert.Error(t, err, "default negativo debe rechazarse")

	_, err = alert.NewThresholdPolicy(map[string]int64{"x": 0}, 10)
	assert.Error(t, err, "umbral por categoría no positivo debe rechazarse")
}

func TestThresholdPolicy_Resolve(t *testing.T) {
	p := testPolicy(t)
	assert.Equal(t, int64(20), p.Resolve("electronics"))
	assert.Equal(t, int64(50), p.Resolve("grocery"))
	assert.Equal(t, int64(10), p.Resolve("unknown"), "categoría desconocida usa default")
	assert.Equal(t, int64(10), p.Resolve(""), "categoría vacía usa default")
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluator: umbrales y estimación de quiebre (escenarios del contrato)
// ──────────────────────────────────────────────────────────────────────────────

// Escenario 1: electronics con quantity=15 < 20 → alerta con threshold=20
// y days_until_stockout = floor(15/2) = 7.
func TestEvaluate_ElectronicsBajoUmbral(t *testing.T) {
	ev := alert.NewEvaluator(testPolicy(t))

	alerts, err := ev.Evaluate([]alert.SnapshotItem{item("p1", "electronics", 15)}, noSupplier)
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Equal(t, "p1", a.ProductID)
	assert.Equal(t, "SKU-p1", a.SKU)
	assert.Equal(t, "wh-1", a.WarehouseID)
	assert.Equal(t, "Bodega Central", a.WarehouseName)
	assert.Equal(t, int64(15), a.CurrentStock)
	assert.Equal(t, int64(20), a.Threshold)
	assert.Equal(t, int64(7), a.DaysUntilStockout)
	assert.Nil(t, a.Supplier)
}

// Escenario 2: categoría desconocida con quantity=12 ≥ default 10 → sin alerta.
func TestEvaluate_CategoriaDesconocidaSobreDefault(t *testing.T) {
	ev := alert.NewEvaluator(testPolicy(t))

	alerts, err := ev.Evaluate([]alert.SnapshotItem{item("p1", "unknown", 12)}, noSupplier)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

// Escenario 3: grocery con quantity=49 < 50 y sin proveedor →
// supplier=nil, days_until_stockout = 24.
func TestEvaluate_GrocerySinProveedor(t *testing.T) {
	ev := alert.NewEvaluator(testPolicy(t))

	alerts, err := ev.Evaluate([]alert.SnapshotItem{item("p1", "grocery", 49)}, noSupplier)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(50), alerts[0].Threshold)
	assert.Equal(t, int64(24), alerts[0].DaysUntilStockout)
	assert.Nil(t, alerts[0].Supplier)
}

// Frontera exacta: quantity == threshold no genera alerta (condición estricta <).
func TestEvaluate_IgualAlUmbralNoAlerta(t *testing.T) {
	ev := alert.NewEvaluator(testPolicy(t))

	alerts, err := ev.Evaluate([]alert.SnapshotItem{
		item("p1", "electronics", 20),
		item("p2", "electronics", 19),
	}, noSupplier)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "p2", alerts[0].ProductID)
}

// Cantidad cero: 0 < umbral siempre → alerta con estimación 0 días.
func TestEvaluate_CantidadCero(t *testing.T) {
	ev := alert.NewEvaluator(testPolicy(t))

	alerts, err := ev.Evaluate([]alert.SnapshotItem{item("p1", "", 0)}, noSupplier)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(0), alerts[0].DaysUntilStockout)
}

func TestEvaluate_SnapshotVacio(t *testing.T) {
	ev := alert.NewEvaluator(testPolicy(t))

	alerts, err := ev.Evaluate(nil, noSupplier)
	require.NoError(t, err)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluator: orden, proveedor, idempotencia
// ──────────────────────────────────────────────────────────────────────────────

// El orden de salida es el orden relativo del snapshot, sin reordenar.
func TestEvaluate_PreservaOrdenDelSnapshot(t *testing.T) {
	ev := alert.NewEvaluator(testPolicy(t))

	snapshot := []alert.SnapshotItem{
		item("p3", "grocery", 1),
		item("p1", "electronics", 100), // sin alerta
		item("p2", "", 4),
		item("p4", "electronics", 2),
	}
	alerts, err := ev.Evaluate(snapshot, noSupplier)
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, "p3", alerts[0].ProductID)
	assert.Equal(t, "p2", alerts[1].ProductID)
	assert.Equal(t, "p4", alerts[2].ProductID)
}

// El proveedor resuelto se adjunta tal cual; la ausencia produce nil, no error.
func TestEvaluate_AdjuntaProveedorPrimerMatch(t *testing.T) {
	ev := alert.NewEvaluator(testPolicy(t))

	acme := &alert.SupplierSummary{ID: "s1", Name: "Acme", ContactEmail: "ventas@acme.co"}
	resolver := func(productID string) (*alert.SupplierSummary, error) {
		if productID == "p1" {
			return acme, nil
		}
		return nil, nil
	}

	alerts, err := ev.Evaluate([]alert.SnapshotItem{
		item("p1", "", 3),
		item("p2", "", 3),
	}, resolver)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	require.NotNil(t, alerts[0].Supplier)
	assert.Equal(t, "s1", alerts[0].Supplier.ID)
	assert.Equal(t, "ventas@acme.co", alerts[0].Supplier.ContactEmail)
	assert.Nil(t, alerts[1].Supplier)
}

// Un error del resolver aborta la evaluación completa.
func TestEvaluate_ErrorDelResolverFallaTodo(t *testing.T) {
	ev := alert.NewEvaluator(testPolicy(t))

	resolver := func(string) (*alert.SupplierSummary, error) {
		return nil, assert.AnError
	}
	_, err := ev.Evaluate([]alert.SnapshotItem{item("p1", "", 3)}, resolver)
	assert.ErrorIs(t, err, assert.AnError)
}

// Evaluar dos veces el mismo snapshot con la misma política produce salida
// idéntica y no muta la entrada (sin estado oculto).
func TestEvaluate_IdempotenteYSinMutacion(t *testing.T) {
	ev := alert.NewEvaluator(testPolicy(t))

	snapshot := []alert.SnapshotItem{
		item("p1", "electronics", 5),
		item("p2", "grocery", 60),
		item("p3", "", 9),
	}
	original := make([]alert.SnapshotItem, len(snapshot))
	copy(original, snapshot)

	first, err := ev.Evaluate(snapshot, noSupplier)
	require.NoError(t, err)
	second, err := ev.Evaluate(snapshot, noSupplier)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, original, snapshot, "el snapshot de entrada no debe mutarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateSnapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateSnapshot(t *testing.T) {
	ok := []alert.SnapshotItem{item("p1", "", 0), item("p2", "grocery", 7)}
	assert.NoError(t, alert.ValidateSnapshot(ok))

	sinProducto := []alert.SnapshotItem{{WarehouseID: "wh-1", Quantity: 3}}
	assert.ErrorIs(t, alert.ValidateSnapshot(sinProducto), alert.ErrSnapshotMalformed)

	sinBodega := []alert.SnapshotItem{{ProductID: "p1", Quantity: 3}}
	assert.ErrorIs(t, alert.ValidateSnapshot(sinBodega), alert.ErrSnapshotMalformed)

	negativo := []alert.SnapshotItem{{ProductID: "p1", WarehouseID: "wh-1", Quantity: -1}}
	assert.ErrorIs(t, alert.ValidateSnapshot(negativo), alert.ErrSnapshotMalformed)
}
