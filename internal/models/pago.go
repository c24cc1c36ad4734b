package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Pago representa el pago de la cuota de un socio para un mes/año.
// El ID se deriva de los datos, por lo que existe a lo sumo un pago por
// socio/mes/año y reimportar la misma combinación sobrescribe el registro.
type Pago struct {
	ID         string          `json:"id" db:"id"`
	SocioCI    string          `json:"socio_ci" db:"socio_ci"`
	Mes        int             `json:"mes" db:"mes"`
	Anio       int             `json:"anio" db:"anio"`
	Monto      decimal.Decimal `json:"monto" db:"monto"`
	FechaPago  *time.Time      `json:"fecha_pago,omitempty" db:"fecha_pago"`
	MetodoPago string          `json:"metodo_pago" db:"metodo_pago"`
}

// PagoRequest representa el request para crear/actualizar un pago
type PagoRequest struct {
	SocioCI    string          `json:"socio_ci" binding:"required"`
	Mes        int             `json:"mes" binding:"required,min=1,max=12"`
	Anio       int             `json:"anio" binding:"required"`
	Monto      decimal.Decimal `json:"monto"`
	FechaPago  string          `json:"fecha_pago"`
	MetodoPago string          `json:"metodo_pago"`
}

// PagoID deriva la identidad de un pago a partir de sus datos.
// Se construye con los valores crudos, antes de cualquier validación, para
// que una fila malformada igual tenga una clave con la que reportar errores.
func PagoID(ci, mes, anio string) string {
	return fmt.Sprintf("%s_%s_%s", ci, mes, anio)
}
