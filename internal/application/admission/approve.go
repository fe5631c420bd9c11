package admission

import (
	"context"
	"fmt"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
	"github.com/jhoicas/Hospitalario-api/pkg/logger"
)

// ApproveAdmissionUseCase convierte la aprobación en una asignación de cama.
// La secuencia admisión->cama->contador corre dentro de UNA transacción
// (TxRunner): si cualquier paso falla, todo se revierte. La ocupación de la
// cama es un update condicional, de modo que ante aprobaciones concurrentes
// contra la misma cama a lo sumo una gana y la perdedora ve BedUnavailable.
type ApproveAdmissionUseCase struct {
	txRunner      TxRunner
	admissionRepo repository.AdmissionRepository
	wardRepo      repository.WardRepository
	bedRepo       repository.BedRepository
	notifier      Notifier
	log           *logger.Logger
}

// NewApproveAdmissionUseCase construye el caso de uso.
func NewApproveAdmissionUseCase(
	txRunner TxRunner,
	admissionRepo repository.AdmissionRepository,
	wardRepo repository.WardRepository,
	bedRepo repository.BedRepository,
	notifier Notifier,
	log *logger.Logger,
) *ApproveAdmissionUseCase {
	return &ApproveAdmissionUseCase{
		txRunner:      txRunner,
		admissionRepo: admissionRepo,
		wardRepo:      wardRepo,
		bedRepo:       bedRepo,
		notifier:      notifier,
		log:           log,
	}
}

// Approve aprueba la admisión y asigna cama (explícita o auto-seleccionada).
// Las notificaciones van después del commit y son fire-and-forget.
func (uc *ApproveAdmissionUseCase) Approve(
	ctx context.Context,
	admissionID, approvedBy string,
	in dto.ApproveAdmissionRequest,
) (*dto.ApproveAdmissionResponse, error) {
	if admissionID == "" || approvedBy == "" {
		return nil, domain.ErrInvalidInput
	}

	adm, err := uc.admissionRepo.GetByID(admissionID)
	if err != nil {
		return nil, fmt.Errorf("aprobación: buscar admisión: %w", err)
	}
	if adm == nil {
		return nil, domain.ErrNotFound
	}
	if adm.Status != entity.AdmissionStatusActive {
		return nil, domain.ErrAlreadyProcessed
	}
	ward, err := uc.wardRepo.GetByID(adm.WardID)
	if err != nil {
		return nil, fmt.Errorf("aprobación: buscar pabellón: %w", err)
	}
	if ward == nil {
		return nil, domain.ErrNotFound
	}

	bed, err := uc.selectBed(adm, in.BedID)
	if err != nil {
		return nil, err
	}

	var assignedDoctor *string
	if in.AssignedDoctorID != "" {
		assignedDoctor = &in.AssignedDoctorID
	}

	// Una sola transacción: aprobar admisión, ocupar cama condicionalmente y
	// decrementar el contador del pabellón con guarda available_beds > 0.
	err = uc.txRunner.RunAdmission(ctx, func(
		admissionRepo repository.AdmissionRepository,
		bedRepo repository.BedRepository,
		wardRepo repository.WardRepository,
	) error {
		if err := admissionRepo.MarkApproved(adm.ID, bed.ID, approvedBy, assignedDoctor); err != nil {
			return err
		}
		if err := bedRepo.Occupy(bed.ID, adm.PatientID); err != nil {
			return err
		}
		return wardRepo.DecrementAvailableBeds(adm.WardID)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Notify(
		adm.RequestedBy,
		"Admisión aprobada",
		fmt.Sprintf("La admisión %s fue aprobada: %s, cama %s", adm.AdmissionNumber, ward.Name, bed.BedNumber),
		entity.NotificationTypeAdmissionApproved,
	)
	if assignedDoctor != nil {
		uc.notifier.Notify(
			*assignedDoctor,
			"Paciente asignado",
			fmt.Sprintf("Se le asignó el paciente de la admisión %s (%s, cama %s)", adm.AdmissionNumber, ward.Name, bed.BedNumber),
			entity.NotificationTypeDoctorAssigned,
		)
	}

	return &dto.ApproveAdmissionResponse{
		AdmissionID: adm.ID,
		WardName:    ward.Name,
		BedNumber:   bed.BedNumber,
	}, nil
}

// selectBed aplica los dos modos del motor de asignación:
//   - cama explícita: debe pertenecer al pabellón de la admisión (InvalidBed)
//     y estar disponible (BedUnavailable);
//   - auto: primera cama disponible por bed_number ascendente (NoCapacity si
//     no hay ninguna).
//
// La lectura es solo una precondición amable; el update condicional dentro de
// la transacción es quien decide ante concurrencia.
func (uc *ApproveAdmissionUseCase) selectBed(adm *entity.Admission, bedID string) (*entity.Bed, error) {
	if bedID != "" {
		bed, err := uc.bedRepo.GetInWard(bedID, adm.WardID)
		if err != nil {
			return nil, fmt.Errorf("aprobación: buscar cama: %w", err)
		}
		if bed == nil {
			return nil, domain.ErrInvalidBed
		}
		if bed.Status != entity.BedStatusAvailable {
			return nil, domain.ErrBedUnavailable
		}
		return bed, nil
	}

	bed, err := uc.bedRepo.FirstAvailable(adm.WardID)
	if err != nil {
		return nil, fmt.Errorf("aprobación: buscar cama disponible: %w", err)
	}
	if bed == nil {
		return nil, domain.ErrNoCapacity
	}
	return bed, nil
}
