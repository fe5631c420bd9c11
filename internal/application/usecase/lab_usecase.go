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

// LabUseCase órdenes de laboratorio: creación con pruebas y registro de resultados.
type LabUseCase struct {
	labRepo     repository.LabOrderRepository
	patientRepo repository.PatientRepository
}

// NewLabUseCase construye el caso de uso.
func NewLabUseCase(labRepo repository.LabOrderRepository, patientRepo repository.PatientRepository) *LabUseCase {
	return &LabUseCase{labRepo: labRepo, patientRepo: patientRepo}
}

// CreateOrder crea la orden con sus pruebas en estado pending.
func (uc *LabUseCase) CreateOrder(orderedBy string, in dto.CreateLabOrderRequest) (*entity.LabOrder, error) {
	if orderedBy == "" || in.PatientID == "" || len(in.Tests) == 0 {
		return nil, domain.ErrInvalidInput
	}
	patient, err := uc.patientRepo.GetByID(in.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrNotFound
	}

	priority := in.Priority
	if priority == "" {
		priority = entity.UrgencyRoutine
	}
	var visitID *string
	if in.VisitID != "" {
		visitID = &in.VisitID
	}

	now := time.Now()
	order := &entity.LabOrder{
		ID:          uuid.New().String(),
		OrderNumber: fmt.Sprintf("LAB-%d-%06d", now.Year(), now.UnixMilli()%1_000_000),
		PatientID:   in.PatientID,
		VisitID:     visitID,
		OrderedBy:   orderedBy,
		Status:      entity.LabOrderStatusOrdered,
		Priority:    priority,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, t := range in.Tests {
		if t.TestName == "" {
			return nil, domain.ErrInvalidInput
		}
		order.Tests = append(order.Tests, entity.LabOrderTest{
			ID:         uuid.New().String(),
			LabOrderID: order.ID,
			TestName:   t.TestName,
			TestCode:   t.TestCode,
			Status:     entity.LabTestStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	if err := uc.labRepo.Create(order); err != nil {
		return nil, fmt.Errorf("crear orden de laboratorio: %w", err)
	}
	return order, nil
}

// ListByPatient lista órdenes del paciente (con pruebas).
func (uc *LabUseCase) ListByPatient(patientID string, limit, offset int) ([]*entity.LabOrder, error) {
	return uc.labRepo.ListByPatient(patientID, limit, offset)
}

// SetResult registra el resultado de una prueba.
func (uc *LabUseCase) SetResult(testID, result string) error {
	if testID == "" || result == "" {
		return domain.ErrInvalidInput
	}
	return uc.labRepo.SetTestResult(testID, result)
}
