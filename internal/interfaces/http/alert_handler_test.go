package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-alerts-api/internal/application/dto"
	appinventory "github.com/tu-usuario/stock-alerts-api/internal/application/inventory"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/alert"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/stock-alerts-api/internal/interfaces/http"
)

type memSupplierRepo struct {
	byProduct map[string]*entity.Supplier
}

func (r *memSupplierRepo) Create(_ *entity.Supplier) error            { return nil }
func (r *memSupplierRepo) GetByID(_ string) (*entity.Supplier, error) { return nil, nil }
func (r *memSupplierRepo) List(_, _ int) ([]*entity.Supplier, error)  { return nil, nil }
func (r *memSupplierRepo) LinkProduct(_, _ string) error              { return nil }

func (r *memSupplierRepo) FindFirstByProduct(_ context.Context, productID string) (*entity.Supplier, error) {
	return r.byProduct[productID], nil
}

func buildAlertApp(t *testing.T, rows []repository.InventoryItem, suppliers map[string]*entity.Supplier) *fiber.App {
	t.Helper()
	policy, err := alert.NewThresholdPolicy(map[string]int64{"electronics": 20, "grocery": 50}, 10)
	require.NoError(t, err)

	inv := newMemInventoryRepo()
	inv.rows = rows
	uc := appinventory.NewLowStockUseCase(inv, &memSupplierRepo{byProduct: suppliers}, policy, nil)
	handler := apphttp.NewAlertHandler(uc)

	app := fiber.New()
	app.Get("/api/companies/:companyId/alerts/low-stock", handler.LowStock)
	return app
}

func getAlerts(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/companies/co-1/alerts/low-stock", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/companies/:companyId/alerts/low-stock
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_RespuestaCompleta(t *testing.T) {
	rows := []repository.InventoryItem{
		{ProductID: "p1", ProductName: "Laptop", SKU: "LAP-1", Category: "electronics",
			WarehouseID: "w1", WarehouseName: "Central", Quantity: 15},
		{ProductID: "p2", ProductName: "Arroz", SKU: "ARZ-1", Category: "grocery",
			WarehouseID: "w1", WarehouseName: "Central", Quantity: 80},
	}
	suppliers := map[string]*entity.Supplier{
		"p1": {ID: "s1", Name: "Acme", ContactEmail: "ventas@acme.co"},
	}
	app := buildAlertApp(t, rows, suppliers)

	resp := getAlerts(t, app)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LowStockAlertsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	require.Len(t, out.Alerts, 1)
	assert.Equal(t, 1, out.TotalAlerts, "total_alerts debe ser exactamente len(alerts)")

	a := out.Alerts[0]
	assert.Equal(t, "p1", a.ProductID)
	assert.Equal(t, "Laptop", a.ProductName)
	assert.Equal(t, "LAP-1", a.SKU)
	assert.Equal(t, "w1", a.WarehouseID)
	assert.Equal(t, "Central", a.WarehouseName)
	assert.Equal(t, int64(15), a.CurrentStock)
	assert.Equal(t, int64(20), a.Threshold)
	assert.Equal(t, int64(7), a.DaysUntilStockout)
	require.NotNil(t, a.Supplier)
	assert.Equal(t, "Acme", a.Supplier.Name)
}

func TestLowStock_SinAlertasRetornaListaVacia(t *testing.T) {
	app := buildAlertApp(t, nil, nil)

	resp := getAlerts(t, app)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.EqualValues(t, 0, body["total_alerts"])
	alerts, ok := body["alerts"].([]any)
	require.True(t, ok, "alerts debe ser un arreglo JSON, nunca null")
	assert.Empty(t, alerts)
}

func TestLowStock_SnapshotMalformadoRetorna500(t *testing.T) {
	rows := []repository.InventoryItem{
		{ProductID: "", WarehouseID: "w1", Quantity: 5}, // join roto
	}
	app := buildAlertApp(t, rows, nil)

	resp := getAlerts(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", decodeBody(t, resp)["message"],
		"el detalle del error nunca llega al cliente")
}
