package models

import "github.com/shopspring/decimal"

// Producto representa un artículo del inventario, identificado por su nombre.
// El stock puede quedar negativo; no se impone un piso.
type Producto struct {
	Nombre      string          `json:"nombre" db:"nombre"`
	PrecioVenta decimal.Decimal `json:"precio_venta" db:"precio_venta"`
	PrecioCosto decimal.Decimal `json:"precio_costo" db:"precio_costo"`
	Stock       int             `json:"stock" db:"stock"`
}

// ProductoRequest representa el request para crear/actualizar un producto
type ProductoRequest struct {
	Nombre      string          `json:"nombre" binding:"required"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	PrecioCosto decimal.Decimal `json:"precio_costo"`
	Stock       int             `json:"stock"`
}
