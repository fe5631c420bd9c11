package pharmacy

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// ApproveSupplyRequestUseCase es el motor de traslado farmacia -> pabellón.
// Dentro de UNA transacción: marca la solicitud approved (condicional a
// pending), decrementa farmacia con guarda current_stock >= cantidad, suma al
// stock del pabellón y appendea la fila de auditoría. Si cualquier paso falla
// todo se revierte: no existe la ventana "solicitud approved sin movimiento
// de stock" del diseño original.
type ApproveSupplyRequestUseCase struct {
	txRunner    TxRunner
	requestRepo repository.SupplyRequestRepository
	supplyRepo  repository.WardSupplyRepository
	stockRepo   repository.PharmacyStockRepository
	notifier    Notifier
}

// NewApproveSupplyRequestUseCase construye el caso de uso.
func NewApproveSupplyRequestUseCase(
	txRunner TxRunner,
	requestRepo repository.SupplyRequestRepository,
	supplyRepo repository.WardSupplyRepository,
	stockRepo repository.PharmacyStockRepository,
	notifier Notifier,
) *ApproveSupplyRequestUseCase {
	return &ApproveSupplyRequestUseCase{
		txRunner:    txRunner,
		requestRepo: requestRepo,
		supplyRepo:  supplyRepo,
		stockRepo:   stockRepo,
		notifier:    notifier,
	}
}

// Approve ejecuta el traslado y devuelve el resumen.
func (uc *ApproveSupplyRequestUseCase) Approve(
	ctx context.Context,
	pharmacistID string,
	in dto.ApproveSupplyRequestRequest,
) (*dto.TransferDetails, error) {
	if pharmacistID == "" || in.RequestID == "" || !in.ApprovedQuantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	req, err := uc.requestRepo.GetByID(in.RequestID)
	if err != nil {
		return nil, fmt.Errorf("traslado: buscar solicitud: %w", err)
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if req.Status != entity.SupplyRequestStatusPending {
		return nil, domain.ErrAlreadyProcessed
	}

	supply, err := uc.supplyRepo.GetByID(req.SupplyID)
	if err != nil {
		return nil, fmt.Errorf("traslado: buscar insumo del pabellón: %w", err)
	}
	if supply == nil {
		return nil, domain.ErrNotFound
	}

	// Sin vínculo a farmacia el stock efectivo es 0: degradación amable.
	if req.PharmacySupplyID == nil {
		return nil, fmt.Errorf("%w: disponibles 0, solicitados %s de %s",
			domain.ErrInsufficientStock, in.ApprovedQuantity, req.SupplyName)
	}
	pharmacyID := *req.PharmacySupplyID

	qty := in.ApprovedQuantity
	now := time.Now()
	var remaining decimal.Decimal

	err = uc.txRunner.RunTransfer(ctx, func(
		requestRepo repository.SupplyRequestRepository,
		stockRepo repository.PharmacyStockRepository,
		supplyRepo repository.WardSupplyRepository,
		auditRepo repository.PharmacyTransactionRepository,
	) error {
		// FOR UPDATE: lectura consistente de previous_stock para la auditoría.
		locked, err := stockRepo.GetForUpdate(pharmacyID)
		if err != nil {
			return err
		}
		if locked == nil {
			return fmt.Errorf("%w: disponibles 0, solicitados %s de %s",
				domain.ErrInsufficientStock, qty, req.SupplyName)
		}
		if locked.CurrentStock.LessThan(qty) {
			return fmt.Errorf("%w: disponibles %s, solicitados %s de %s",
				domain.ErrInsufficientStock, locked.CurrentStock, qty, req.SupplyName)
		}

		if err := requestRepo.MarkApproved(req.ID, pharmacistID, qty, now); err != nil {
			return err
		}
		if err := stockRepo.Decrement(pharmacyID, qty); err != nil {
			return err
		}
		if err := supplyRepo.AddStock(req.SupplyID, qty); err != nil {
			return err
		}

		remaining = locked.CurrentStock.Sub(qty)
		audit := &entity.PharmacyTransaction{
			ID:               uuid.New().String(),
			TransactionType:  entity.TransactionTypeTransferToWard,
			PharmacySupplyID: pharmacyID,
			WardSupplyID:     &req.SupplyID,
			SupplyRequestID:  &req.ID,
			WardID:           &req.WardID,
			Quantity:         qty,
			PreviousStock:    locked.CurrentStock,
			NewStock:         remaining,
			PerformedBy:      pharmacistID,
			Notes:            in.ApprovalNotes,
			CreatedAt:        now,
		}
		return auditRepo.Create(audit)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Notify(
		req.RequestedBy,
		"Insumos entregados",
		fmt.Sprintf("Se aprobaron %s %s de %s para el pabellón", qty, supply.Unit, req.SupplyName),
		entity.NotificationTypeSupplyDelivery,
	)

	return &dto.TransferDetails{
		SupplyName:             req.SupplyName,
		ApprovedQuantity:       qty,
		PharmacyStockRemaining: remaining,
		WardID:                 req.WardID,
	}, nil
}
