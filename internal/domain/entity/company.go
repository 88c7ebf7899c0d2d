package entity

import "time"

// Company representa una empresa (tenant). Productos, bodegas y usuarios
// pertenecen a una empresa; las alertas de stock bajo se consultan por empresa.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
