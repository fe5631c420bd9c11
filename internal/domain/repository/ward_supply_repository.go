package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

// WardSupplyRepository define el puerto para el stock de insumos por pabellón.
type WardSupplyRepository interface {
	Create(supply *entity.WardSupply) error
	GetByID(id string) (*entity.WardSupply, error)
	ListByWard(wardID string) ([]*entity.WardSupply, error)
	// AddStock incrementa el contador del pabellón (UPDATE aritmético, misma
	// transacción que el decremento de farmacia para conservar la cantidad).
	AddStock(id string, quantity decimal.Decimal) error
}
