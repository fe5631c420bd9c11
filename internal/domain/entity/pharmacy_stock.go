package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PharmacyStock representa el stock central de farmacia para un insumo.
// CurrentStock se decrementa únicamente con updates condicionales
// (current_stock >= cantidad) dentro de la transacción de traslado.
type PharmacyStock struct {
	ID                string
	SupplyName        string
	Category          string // medication, consumable, equipment
	CurrentStock      decimal.Decimal
	MinimumStockLevel decimal.Decimal
	Unit              string // unidad, ml, mg, caja
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLow indica si el stock está en o bajo el nivel mínimo.
func (s *PharmacyStock) IsLow() bool {
	return s.CurrentStock.LessThanOrEqual(s.MinimumStockLevel)
}
