package dto

// SupplierSummaryDTO resumen de proveedor adjunto a una alerta (nullable).
type SupplierSummaryDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// StockAlertDTO una alerta de stock bajo del contrato público.
type StockAlertDTO struct {
	ProductID         string              `json:"product_id"`
	ProductName       string              `json:"product_name"`
	SKU               string              `json:"sku"`
	WarehouseID       string              `json:"warehouse_id"`
	WarehouseName     string              `json:"warehouse_name"`
	CurrentStock      int64               `json:"current_stock"`
	Threshold         int64               `json:"threshold"`
	DaysUntilStockout int64               `json:"days_until_stockout"`
	Supplier          *SupplierSummaryDTO `json:"supplier"`
}

// LowStockAlertsResponse respuesta de GET /api/companies/:companyId/alerts/low-stock.
// TotalAlerts siempre es igual a len(Alerts).
type LowStockAlertsResponse struct {
	Alerts      []StockAlertDTO `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}
