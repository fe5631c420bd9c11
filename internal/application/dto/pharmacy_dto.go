package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplyRequestRequest cuerpo de POST /api/supply-requests.
type CreateSupplyRequestRequest struct {
	WardID   string          `json:"ward_id"`
	SupplyID string          `json:"supply_id"` // ward_supplies.id
	Quantity decimal.Decimal `json:"quantity"`
	Notes    string          `json:"notes"`
}

// ApproveSupplyRequestRequest cuerpo de POST /api/pharmacist/approve-request.
type ApproveSupplyRequestRequest struct {
	RequestID        string          `json:"request_id"`
	ApprovedQuantity decimal.Decimal `json:"approved_quantity"`
	ApprovalNotes    string          `json:"approval_notes"`
}

// TransferDetails resumen del traslado farmacia -> pabellón.
type TransferDetails struct {
	SupplyName             string          `json:"supply_name"`
	ApprovedQuantity       decimal.Decimal `json:"approved_quantity"`
	PharmacyStockRemaining decimal.Decimal `json:"pharmacy_stock_remaining"`
	WardID                 string          `json:"ward_id"`
}

// SupplyRequestDTO proyección JSON de una solicitud de insumos.
type SupplyRequestDTO struct {
	ID                string           `json:"id"`
	WardID            string           `json:"ward_id"`
	SupplyID          string           `json:"supply_id"`
	PharmacySupplyID  *string          `json:"pharmacy_supply_id"`
	SupplyName        string           `json:"supply_name"`
	QuantityRequested decimal.Decimal  `json:"quantity_requested"`
	Status            string           `json:"request_status"`
	RequestedBy       string           `json:"requested_by"`
	ApprovedBy        *string          `json:"approved_by"`
	DeliveredQuantity *decimal.Decimal `json:"delivered_quantity"`
	DeliveredDate     *time.Time       `json:"delivered_date"`
	CreatedAt         time.Time        `json:"created_at"`
}

// PharmacyStockDTO proyección JSON de un ítem del stock de farmacia.
type PharmacyStockDTO struct {
	ID                string          `json:"id"`
	SupplyName        string          `json:"supply_name"`
	Category          string          `json:"category"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	MinimumStockLevel decimal.Decimal `json:"minimum_stock_level"`
	Unit              string          `json:"unit"`
	Low               bool            `json:"low"`
}

// PharmacyTransactionDTO fila del rastro de auditoría.
type PharmacyTransactionDTO struct {
	ID               string          `json:"id"`
	TransactionType  string          `json:"transaction_type"`
	PharmacySupplyID string          `json:"pharmacy_supply_id"`
	WardSupplyID     *string         `json:"ward_supply_id"`
	SupplyRequestID  *string         `json:"supply_request_id"`
	WardID           *string         `json:"ward_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	PreviousStock    decimal.Decimal `json:"previous_stock"`
	NewStock         decimal.Decimal `json:"new_stock"`
	PerformedBy      string          `json:"performed_by"`
	Notes            string          `json:"notes"`
	CreatedAt        time.Time       `json:"created_at"`
}

// WardSupplyDTO stock de un insumo en un pabellón.
type WardSupplyDTO struct {
	ID                string          `json:"id"`
	WardID            string          `json:"ward_id"`
	SupplyName        string          `json:"supply_name"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	MinimumStockLevel decimal.Decimal `json:"minimum_stock_level"`
	Unit              string          `json:"unit"`
}
