package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WardSupply representa el stock de un insumo en un pabellón.
// Es la contraparte del PharmacyStock del mismo insumo: un traslado decrementa
// farmacia e incrementa aquí la misma cantidad, en una sola transacción.
type WardSupply struct {
	ID                string
	WardID            string
	SupplyName        string
	CurrentStock      decimal.Decimal
	MinimumStockLevel decimal.Decimal
	Unit              string
	UpdatedAt         time.Time
}
