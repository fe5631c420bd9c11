package admission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
	"github.com/jhoicas/Hospitalario-api/pkg/logger"
)

// RequestAdmissionUseCase convierte la solicitud de admisión de un médico en
// una asignación de pabellón: elección greedy del pabellón activo del tipo
// pedido con más camas disponibles. La cama NO se reserva aquí; la asignación
// real ocurre en la aprobación con un update condicional.
type RequestAdmissionUseCase struct {
	patientRepo   repository.PatientRepository
	userRepo      repository.UserRepository
	visitRepo     repository.VisitRepository
	wardRepo      repository.WardRepository
	admissionRepo repository.AdmissionRepository
	notifier      Notifier
	log           *logger.Logger
}

// NewRequestAdmissionUseCase construye el caso de uso.
func NewRequestAdmissionUseCase(
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	visitRepo repository.VisitRepository,
	wardRepo repository.WardRepository,
	admissionRepo repository.AdmissionRepository,
	notifier Notifier,
	log *logger.Logger,
) *RequestAdmissionUseCase {
	return &RequestAdmissionUseCase{
		patientRepo:   patientRepo,
		userRepo:      userRepo,
		visitRepo:     visitRepo,
		wardRepo:      wardRepo,
		admissionRepo: admissionRepo,
		notifier:      notifier,
		log:           log,
	}
}

// Request valida paciente y médico, elige pabellón y crea la admisión en
// estado active con bed_id NULL. Los efectos laterales (notificar a la jefa de
// enfermería, actualizar el estado de la visita) son best-effort: fallos se
// loguean y la creación de la admisión se reporta exitosa igual.
func (uc *RequestAdmissionUseCase) Request(
	ctx context.Context,
	requestedBy string,
	in dto.RequestAdmissionRequest,
) (*entity.Admission, *entity.Ward, error) {
	if requestedBy == "" || in.PatientID == "" || in.VisitID == "" || in.AdmissionReason == "" {
		return nil, nil, domain.ErrInvalidInput
	}

	patient, err := uc.patientRepo.GetByID(in.PatientID)
	if err != nil {
		return nil, nil, fmt.Errorf("admisión: buscar paciente: %w", err)
	}
	if patient == nil {
		return nil, nil, domain.ErrNotFound
	}
	doctor, err := uc.userRepo.GetByID(requestedBy)
	if err != nil {
		return nil, nil, fmt.Errorf("admisión: buscar médico: %w", err)
	}
	if doctor == nil {
		return nil, nil, domain.ErrNotFound
	}

	wardType := in.WardType
	if wardType == "" {
		wardType = entity.WardTypeGeneral
	}
	urgency := in.Urgency
	if urgency == "" {
		urgency = entity.UrgencyRoutine
	}

	// Elección greedy, no reservada: entre la lectura del pabellón y la
	// aprobación puede entrar otra solicitud; el update condicional de la
	// aprobación es quien decide de verdad.
	ward, err := uc.wardRepo.FindAvailableByType(wardType)
	if err != nil {
		return nil, nil, fmt.Errorf("admisión: buscar pabellón: %w", err)
	}
	if ward == nil {
		return nil, nil, domain.ErrNoCapacity
	}

	now := time.Now()
	adm := &entity.Admission{
		ID:                uuid.New().String(),
		AdmissionNumber:   NewAdmissionNumber(now),
		PatientID:         in.PatientID,
		VisitID:           in.VisitID,
		WardID:            ward.ID,
		AttendingDoctorID: requestedBy,
		RequestedBy:       requestedBy,
		Status:            entity.AdmissionStatusActive,
		AdmissionReason:   in.AdmissionReason,
		Diagnosis:         in.Diagnosis,
		TreatmentPlan:     in.TreatmentPlan,
		Urgency:           urgency,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.admissionRepo.Create(adm); err != nil {
		return nil, nil, fmt.Errorf("admisión: crear: %w", err)
	}

	// Efectos best-effort a partir de aquí: la admisión ya existe.
	if ward.HeadNurseID != nil {
		uc.notifier.Notify(
			*ward.HeadNurseID,
			"Nueva solicitud de admisión",
			fmt.Sprintf("Solicitud %s para %s en %s (%s)", adm.AdmissionNumber, patient.FullName(), ward.Name, urgency),
			entity.NotificationTypeAdmissionRequest,
		)
	}
	if err := uc.visitRepo.UpdateStatus(in.VisitID, entity.VisitStatusAdmissionRequested); err != nil {
		uc.log.Warn().Err(err).
			Str("visit_id", in.VisitID).
			Str("admission_id", adm.ID).
			Msg("no se pudo actualizar el estado de la visita")
	}

	return adm, ward, nil
}
