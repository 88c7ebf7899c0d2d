package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-alerts-api/internal/application/usecase"
	"github.com/tu-usuario/stock-alerts-api/internal/domain"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/entity"
	"github.com/tu-usuario/stock-alerts-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/stock-alerts-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para montar el stack HTTP completo sin base de datos
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	byID  map[string]*entity.Product
	bySKU map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{
		byID:  make(map[string]*entity.Product),
		bySKU: make(map[string]*entity.Product),
	}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	if _, ok := r.bySKU[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	r.byID[p.ID] = p
	r.bySKU[p.SKU] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error)   { return r.byID[id], nil }
func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) { return r.bySKU[sku], nil }
func (r *memProductRepo) Update(p *entity.Product) error               { r.byID[p.ID] = p; return nil }
func (r *memProductRepo) Delete(id string) error                       { delete(r.byID, id); return nil }
func (r *memProductRepo) ListByCompany(_ string, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

type memInventoryRepo struct {
	records map[string]*entity.InventoryRecord
	rows    []repository.InventoryItem
}

func newMemInventoryRepo() *memInventoryRepo {
	return &memInventoryRepo{records: make(map[string]*entity.InventoryRecord)}
}

func (r *memInventoryRepo) Upsert(rec *entity.InventoryRecord) error {
	cp := *rec
	r.records[rec.ProductID+"|"+rec.WarehouseID] = &cp
	return nil
}

func (r *memInventoryRepo) Get(p, w string) (*entity.InventoryRecord, error) {
	return r.records[p+"|"+w], nil
}

func (r *memInventoryRepo) GetForUpdate(p, w string) (*entity.InventoryRecord, error) {
	if rec, ok := r.records[p+"|"+w]; ok {
		cp := *rec
		return &cp, nil
	}
	return &entity.InventoryRecord{ProductID: p, WarehouseID: w}, nil
}

func (r *memInventoryRepo) ListForCompany(_ context.Context, _ string) ([]repository.InventoryItem, error) {
	return r.rows, nil
}

// memTxRunner no simula rollback: los tests de atomicidad viven en la capa
// de aplicación; aquí solo interesa el mapeo de errores a HTTP.
type memTxRunner struct {
	products *memProductRepo
	inv      *memInventoryRepo
}

func (tr *memTxRunner) Run(_ context.Context, fn func(
	repository.ProductRepository, repository.InventoryRepository,
) error) error {
	return fn(tr.products, tr.inv)
}

func buildProductApp() (*fiber.App, *memProductRepo, *memInventoryRepo) {
	products := newMemProductRepo()
	inv := newMemInventoryRepo()
	uc := usecase.NewProductUseCase(products, &memTxRunner{products: products, inv: inv}, nil)
	handler := apphttp.NewProductHandler(uc)

	app := fiber.New()
	app.Post("/api/products", handler.Create)
	return app, products, inv
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func validProductBody() map[string]any {
	return map[string]any{
		"name":             "Teclado mecánico",
		"sku":              "TEC-001",
		"price":            149.90,
		"warehouse_id":     "wh-1",
		"initial_quantity": 30,
		"category":         "electronics",
		"company_id":       "co-1",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/products
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_Retorna201ConMensajeDelContrato(t *testing.T) {
	app, _, inv := buildProductApp()

	resp := postJSON(t, app, "/api/products", validProductBody())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Product created successfully", body["message"])
	productID, _ := body["product_id"].(string)
	require.NotEmpty(t, productID)

	rec, _ := inv.Get(productID, "wh-1")
	require.NotNil(t, rec, "el 201 implica inventario inicial persistido")
	assert.Equal(t, int64(30), rec.Quantity)
}

func TestProductCreate_CampoFaltanteRetorna400(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"sin name", func(b map[string]any) { delete(b, "name") }},
		{"sin sku", func(b map[string]any) { delete(b, "sku") }},
		{"sin price", func(b map[string]any) { delete(b, "price") }},
		{"sin warehouse_id", func(b map[string]any) { delete(b, "warehouse_id") }},
		// price=0 cuenta como ausente en el contrato.
		{"price cero", func(b map[string]any) { b["price"] = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, products, _ := buildProductApp()
			body := validProductBody()
			tc.mutate(body)

			resp := postJSON(t, app, "/api/products", body)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Missing required fields", decodeBody(t, resp)["message"])
			assert.Empty(t, products.byID, "una petición rechazada no debe persistir nada")
		})
	}
}

func TestProductCreate_SKUDuplicadoRetorna409(t *testing.T) {
	app, _, _ := buildProductApp()

	resp := postJSON(t, app, "/api/products", validProductBody())
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/products", validProductBody())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "SKU already exists", decodeBody(t, resp)["message"])
}

func TestProductCreate_JSONInvalidoRetorna400(t *testing.T) {
	app, _, _ := buildProductApp()

	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing required fields", decodeBody(t, resp)["message"])
}
