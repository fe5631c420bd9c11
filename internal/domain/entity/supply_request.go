package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una solicitud de insumos.
const (
	SupplyRequestStatusPending   = "pending"
	SupplyRequestStatusApproved  = "approved"
	SupplyRequestStatusCompleted = "completed"
)

// SupplyRequest es la petición de un pabellón por más unidades de un insumo,
// surtida desde el stock de farmacia. PharmacySupplyID es un vínculo best-effort
// resuelto por nombre al crear la solicitud; puede quedar en NULL.
// La solicitud se muta exactamente una vez (pending -> approved).
type SupplyRequest struct {
	ID                string
	WardID            string
	SupplyID          string // ward_supplies.id
	PharmacySupplyID  *string
	SupplyName        string
	QuantityRequested decimal.Decimal
	Status            string
	RequestedBy       string
	ApprovedBy        *string
	DeliveredQuantity *decimal.Decimal
	DeliveredDate     *time.Time
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
