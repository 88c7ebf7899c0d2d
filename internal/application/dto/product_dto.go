package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body de POST /api/products: crea el producto y su
// registro de inventario inicial de forma atómica.
// CompanyID es opcional (el origen creaba productos sin empresa; las alertas
// filtran por empresa, así que un producto sin empresa nunca alerta).
type CreateProductRequest struct {
	Name            string          `json:"name"`
	SKU             string          `json:"sku"`
	Price           decimal.Decimal `json:"price"`
	WarehouseID     string          `json:"warehouse_id"`
	InitialQuantity int64           `json:"initial_quantity"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	CompanyID       string          `json:"company_id"`
}

// CreateProductResponse respuesta 201 del contrato público.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
