package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Hospitalario-api/internal/application/admission"
	"github.com/jhoicas/Hospitalario-api/internal/application/pharmacy"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// Ensure TxRunner implements admission.TxRunner and pharmacy.TxRunner.
var _ admission.TxRunner = (*TxRunner)(nil)
var _ pharmacy.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunAdmission inicia una transacción con los repos del flujo de admisión
// (admisión, camas, pabellones) y hace Commit o Rollback.
func (r *TxRunner) RunAdmission(ctx context.Context, fn func(
	admissionRepo repository.AdmissionRepository,
	bedRepo repository.BedRepository,
	wardRepo repository.WardRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	admissionRepo := NewAdmissionRepository(tx)
	bedRepo := NewBedRepository(tx)
	wardRepo := NewWardRepository(tx)

	if err := fn(admissionRepo, bedRepo, wardRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunTransfer inicia una transacción con los repos del traslado de insumos
// (solicitud, stock de farmacia, stock del pabellón, auditoría).
func (r *TxRunner) RunTransfer(ctx context.Context, fn func(
	requestRepo repository.SupplyRequestRepository,
	stockRepo repository.PharmacyStockRepository,
	supplyRepo repository.WardSupplyRepository,
	auditRepo repository.PharmacyTransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	requestRepo := NewSupplyRequestRepository(tx)
	stockRepo := NewPharmacyStockRepository(tx)
	supplyRepo := NewWardSupplyRepository(tx)
	auditRepo := NewPharmacyTransactionRepository(tx)

	if err := fn(requestRepo, stockRepo, supplyRepo, auditRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
