package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// WardUseCase creación y consulta de pabellones y camas.
type WardUseCase struct {
	wardRepo   repository.WardRepository
	bedRepo    repository.BedRepository
	supplyRepo repository.WardSupplyRepository
}

// NewWardUseCase construye el caso de uso.
func NewWardUseCase(
	wardRepo repository.WardRepository,
	bedRepo repository.BedRepository,
	supplyRepo repository.WardSupplyRepository,
) *WardUseCase {
	return &WardUseCase{wardRepo: wardRepo, bedRepo: bedRepo, supplyRepo: supplyRepo}
}

// Create crea el pabellón y siembra sus camas en estado available con
// numeración <prefijo>-001, <prefijo>-002, ... available_beds nace igual a
// total_beds: es la única vez que el contador se fija fuera de una transacción
// de admisión.
func (uc *WardUseCase) Create(in dto.CreateWardRequest) (*entity.Ward, error) {
	if in.Name == "" || in.TotalBeds <= 0 {
		return nil, domain.ErrInvalidInput
	}
	wardType := in.WardType
	if wardType == "" {
		wardType = entity.WardTypeGeneral
	}
	prefix := in.BedPrefix
	if prefix == "" {
		prefix = "CAMA"
	}
	var headNurse *string
	if in.HeadNurseID != "" {
		headNurse = &in.HeadNurseID
	}

	now := time.Now()
	ward := &entity.Ward{
		ID:            uuid.New().String(),
		Name:          in.Name,
		WardType:      wardType,
		TotalBeds:     in.TotalBeds,
		AvailableBeds: in.TotalBeds,
		HeadNurseID:   headNurse,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.wardRepo.Create(ward); err != nil {
		return nil, fmt.Errorf("crear pabellón: %w", err)
	}

	beds := make([]*entity.Bed, 0, in.TotalBeds)
	for i := 1; i <= in.TotalBeds; i++ {
		beds = append(beds, &entity.Bed{
			ID:        uuid.New().String(),
			WardID:    ward.ID,
			BedNumber: fmt.Sprintf("%s-%03d", prefix, i),
			BedType:   wardType,
			Status:    entity.BedStatusAvailable,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if err := uc.bedRepo.CreateBatch(beds); err != nil {
		return nil, fmt.Errorf("sembrar camas: %w", err)
	}
	return ward, nil
}

// List lista pabellones paginados.
func (uc *WardUseCase) List(limit, offset int) ([]*entity.Ward, error) {
	return uc.wardRepo.List(limit, offset)
}

// ListBeds lista las camas de un pabellón; ErrNotFound si el pabellón no existe.
func (uc *WardUseCase) ListBeds(wardID string) ([]*entity.Bed, error) {
	ward, err := uc.wardRepo.GetByID(wardID)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, domain.ErrNotFound
	}
	return uc.bedRepo.ListByWard(wardID)
}

// ListSupplies lista el stock de insumos del pabellón.
func (uc *WardUseCase) ListSupplies(wardID string) ([]*entity.WardSupply, error) {
	ward, err := uc.wardRepo.GetByID(wardID)
	if err != nil {
		return nil, err
	}
	if ward == nil {
		return nil, domain.ErrNotFound
	}
	return uc.supplyRepo.ListByWard(wardID)
}
