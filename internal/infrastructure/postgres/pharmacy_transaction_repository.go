package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

var _ repository.PharmacyTransactionRepository = (*PharmacyTransactionRepo)(nil)

// PharmacyTransactionRepo adaptador del rastro de auditoría de farmacia.
// Solo INSERT y SELECT: la tabla es append-only.
type PharmacyTransactionRepo struct {
	q Querier
}

// NewPharmacyTransactionRepository construye el adaptador de auditoría. Pasar pool o tx (Querier).
func NewPharmacyTransactionRepository(q Querier) *PharmacyTransactionRepo {
	return &PharmacyTransactionRepo{q: q}
}

const pharmacyTxColumns = `id, transaction_type, pharmacy_supply_id, ward_supply_id, supply_request_id, ward_id, quantity, previous_stock, new_stock, performed_by, notes, created_at`

// Create inserta la fila de auditoría del movimiento.
func (r *PharmacyTransactionRepo) Create(tx *entity.PharmacyTransaction) error {
	query := `
		INSERT INTO pharmacy_transactions (` + pharmacyTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.TransactionType, tx.PharmacySupplyID, tx.WardSupplyID, tx.SupplyRequestID,
		tx.WardID, tx.Quantity, tx.PreviousStock, tx.NewStock, tx.PerformedBy, tx.Notes, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pharmacy transaction: %w", err)
	}
	return nil
}

// List lista las transacciones más recientes primero.
func (r *PharmacyTransactionRepo) List(limit, offset int) ([]*entity.PharmacyTransaction, error) {
	query := `SELECT ` + pharmacyTxColumns + ` FROM pharmacy_transactions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pharmacy transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.PharmacyTransaction
	for rows.Next() {
		var t entity.PharmacyTransaction
		if err := rows.Scan(&t.ID, &t.TransactionType, &t.PharmacySupplyID, &t.WardSupplyID,
			&t.SupplyRequestID, &t.WardID, &t.Quantity, &t.PreviousStock, &t.NewStock,
			&t.PerformedBy, &t.Notes, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pharmacy transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
