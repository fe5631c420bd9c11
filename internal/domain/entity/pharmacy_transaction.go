package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de farmacia.
const (
	TransactionTypeTransferToWard = "transfer_to_ward"
	TransactionTypeRestock        = "restock"
	TransactionTypeAdjustment     = "adjustment"
)

// PharmacyTransaction es la fila de auditoría append-only de cada movimiento
// de stock de farmacia. Nunca se muta ni se borra: es la única entidad del
// sistema con invariante real de inmutabilidad.
type PharmacyTransaction struct {
	ID               string
	TransactionType  string
	PharmacySupplyID string
	WardSupplyID     *string
	SupplyRequestID  *string
	WardID           *string
	Quantity         decimal.Decimal
	PreviousStock    decimal.Decimal // stock de farmacia antes del movimiento
	NewStock         decimal.Decimal // stock de farmacia después del movimiento
	PerformedBy      string
	Notes            string
	CreatedAt        time.Time
}
