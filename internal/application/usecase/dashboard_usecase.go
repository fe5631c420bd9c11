package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// DashboardUseCase agrega ocupación por pabellón, solicitudes pendientes y
// alertas de stock bajo para el panel administrativo. Solo lecturas.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary arma el resumen del panel.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummaryDTO, error) {
	occupancies, err := uc.repo.WardOccupancies()
	if err != nil {
		return nil, fmt.Errorf("dashboard: ocupación: %w", err)
	}
	pending, err := uc.repo.CountPendingSupplyRequests()
	if err != nil {
		return nil, fmt.Errorf("dashboard: solicitudes pendientes: %w", err)
	}
	active, err := uc.repo.CountActiveAdmissionRequests()
	if err != nil {
		return nil, fmt.Errorf("dashboard: admisiones activas: %w", err)
	}
	low, err := uc.repo.CountLowPharmacyStock()
	if err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", err)
	}

	wards := make([]dto.WardOccupancyDTO, 0, len(occupancies))
	for _, o := range occupancies {
		rate := 0.0
		if o.TotalBeds > 0 {
			rate = float64(o.OccupiedBeds) / float64(o.TotalBeds)
		}
		wards = append(wards, dto.WardOccupancyDTO{
			WardID:        o.WardID,
			WardName:      o.WardName,
			WardType:      o.WardType,
			TotalBeds:     o.TotalBeds,
			AvailableBeds: o.AvailableBeds,
			OccupiedBeds:  o.OccupiedBeds,
			OccupancyRate: rate,
		})
	}

	return &dto.DashboardSummaryDTO{
		Wards:                   wards,
		PendingSupplyRequests:   pending,
		ActiveAdmissionRequests: active,
		LowPharmacyStockItems:   low,
		GeneratedAt:             time.Now(),
	}, nil
}
