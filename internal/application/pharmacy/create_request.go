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
	"github.com/jhoicas/Hospitalario-api/pkg/logger"
)

// CreateSupplyRequestUseCase crea la solicitud de insumos de un pabellón.
// Al crearla se intenta resolver el ítem de farmacia por nombre normalizado;
// el vínculo es best-effort y puede quedar en NULL.
type CreateSupplyRequestUseCase struct {
	requestRepo repository.SupplyRequestRepository
	supplyRepo  repository.WardSupplyRepository
	stockRepo   repository.PharmacyStockRepository
	log         *logger.Logger
}

// NewCreateSupplyRequestUseCase construye el caso de uso.
func NewCreateSupplyRequestUseCase(
	requestRepo repository.SupplyRequestRepository,
	supplyRepo repository.WardSupplyRepository,
	stockRepo repository.PharmacyStockRepository,
	log *logger.Logger,
) *CreateSupplyRequestUseCase {
	return &CreateSupplyRequestUseCase{
		requestRepo: requestRepo,
		supplyRepo:  supplyRepo,
		stockRepo:   stockRepo,
		log:         log,
	}
}

// Create valida el insumo del pabellón y persiste la solicitud en pending.
func (uc *CreateSupplyRequestUseCase) Create(
	ctx context.Context,
	requestedBy string,
	in dto.CreateSupplyRequestRequest,
) (*entity.SupplyRequest, error) {
	if requestedBy == "" || in.WardID == "" || in.SupplyID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	supply, err := uc.supplyRepo.GetByID(in.SupplyID)
	if err != nil {
		return nil, fmt.Errorf("solicitud insumos: buscar insumo: %w", err)
	}
	if supply == nil {
		return nil, domain.ErrNotFound
	}
	if supply.WardID != in.WardID {
		return nil, domain.ErrInvalidInput
	}

	// Vínculo best-effort con farmacia: un fallo de búsqueda no bloquea la solicitud.
	var pharmacyID *string
	stock, err := uc.stockRepo.FindByFoldedName(FoldSupplyName(supply.SupplyName))
	if err != nil {
		uc.log.Warn().Err(err).
			Str("supply_name", supply.SupplyName).
			Msg("no se pudo resolver el ítem de farmacia para la solicitud")
	} else if stock != nil {
		pharmacyID = &stock.ID
	}

	now := time.Now()
	req := &entity.SupplyRequest{
		ID:                uuid.New().String(),
		WardID:            in.WardID,
		SupplyID:          in.SupplyID,
		PharmacySupplyID:  pharmacyID,
		SupplyName:        supply.SupplyName,
		QuantityRequested: in.Quantity,
		Status:            entity.SupplyRequestStatusPending,
		RequestedBy:       requestedBy,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.requestRepo.Create(req); err != nil {
		return nil, fmt.Errorf("solicitud insumos: crear: %w", err)
	}
	return req, nil
}
