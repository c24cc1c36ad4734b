package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gasto representa un gasto del club
type Gasto struct {
	ID       uuid.UUID       `json:"id" db:"id"`
	Concepto string          `json:"concepto" db:"concepto"`
	Monto    decimal.Decimal `json:"monto" db:"monto"`
	Fecha    time.Time       `json:"fecha" db:"fecha"`
}

// GastoRequest representa el request para registrar un gasto
type GastoRequest struct {
	Concepto string          `json:"concepto" binding:"required"`
	Monto    decimal.Decimal `json:"monto"`
	Fecha    string          `json:"fecha"`
}
