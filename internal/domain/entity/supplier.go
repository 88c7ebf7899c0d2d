package entity

import "time"

// Supplier representa un proveedor con su contacto. La asociación con
// productos es muchos-a-muchos (tabla product_suppliers); las alertas de
// stock bajo adjuntan como máximo un proveedor por producto.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
