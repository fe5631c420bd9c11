package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

// PharmacyStockRepository define el puerto para el stock central de farmacia.
type PharmacyStockRepository interface {
	Create(stock *entity.PharmacyStock) error
	GetByID(id string) (*entity.PharmacyStock, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de una tx para
	// leer previous_stock de forma consistente antes del decremento.
	GetForUpdate(id string) (*entity.PharmacyStock, error)
	// FindByFoldedName busca por nombre normalizado (sin tildes, lowercase).
	// nil si no hay coincidencia: el vínculo solicitud->farmacia es best-effort.
	FindByFoldedName(folded string) (*entity.PharmacyStock, error)
	List(limit, offset int) ([]*entity.PharmacyStock, error)
	ListLow() ([]*entity.PharmacyStock, error)
	// Decrement resta quantity con guarda current_stock >= quantity.
	// Retorna domain.ErrInsufficientStock si no afecta filas.
	Decrement(id string, quantity decimal.Decimal) error
}
