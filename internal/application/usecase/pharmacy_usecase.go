package usecase

import (
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// PharmacyQueryUseCase consultas de solo lectura de farmacia: stock, ítems
// bajo mínimo, solicitudes y rastro de auditoría.
type PharmacyQueryUseCase struct {
	stockRepo   repository.PharmacyStockRepository
	requestRepo repository.SupplyRequestRepository
	auditRepo   repository.PharmacyTransactionRepository
}

// NewPharmacyQueryUseCase construye el caso de uso.
func NewPharmacyQueryUseCase(
	stockRepo repository.PharmacyStockRepository,
	requestRepo repository.SupplyRequestRepository,
	auditRepo repository.PharmacyTransactionRepository,
) *PharmacyQueryUseCase {
	return &PharmacyQueryUseCase{stockRepo: stockRepo, requestRepo: requestRepo, auditRepo: auditRepo}
}

// ListStock lista el stock de farmacia paginado.
func (uc *PharmacyQueryUseCase) ListStock(limit, offset int) ([]*entity.PharmacyStock, error) {
	return uc.stockRepo.List(limit, offset)
}

// ListLowStock lista los ítems en o bajo el nivel mínimo.
func (uc *PharmacyQueryUseCase) ListLowStock() ([]*entity.PharmacyStock, error) {
	return uc.stockRepo.ListLow()
}

// ListRequests lista solicitudes de insumos filtradas por pabellón y estado.
func (uc *PharmacyQueryUseCase) ListRequests(wardID, status string, limit, offset int) ([]*entity.SupplyRequest, error) {
	return uc.requestRepo.List(wardID, status, limit, offset)
}

// ListTransactions lista el rastro de auditoría (append-only, solo lectura).
func (uc *PharmacyQueryUseCase) ListTransactions(limit, offset int) ([]*entity.PharmacyTransaction, error) {
	return uc.auditRepo.List(limit, offset)
}
