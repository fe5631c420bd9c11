package repository

import "github.com/jhoicas/Hospitalario-api/internal/domain/entity"

// PharmacyTransactionRepository puerto para el rastro de auditoría de farmacia.
// Solo inserta y lista: las transacciones jamás se actualizan ni se borran.
type PharmacyTransactionRepository interface {
	Create(tx *entity.PharmacyTransaction) error
	List(limit, offset int) ([]*entity.PharmacyTransaction, error)
}
