package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta representa una venta de inventario
type Venta struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	ProductoNombre string          `json:"producto_nombre" db:"producto_nombre"`
	Cantidad       int             `json:"cantidad" db:"cantidad"`
	Monto          decimal.Decimal `json:"monto" db:"monto"`
	FechaVenta     time.Time       `json:"fecha_venta" db:"fecha_venta"`
}

// VentaRequest representa el request para registrar una venta
type VentaRequest struct {
	ProductoNombre string          `json:"producto_nombre" binding:"required"`
	Cantidad       int             `json:"cantidad" binding:"required,min=1"`
	Monto          decimal.Decimal `json:"monto"`
	FechaVenta     string          `json:"fecha_venta"`
}
