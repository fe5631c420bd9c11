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

// PatientUseCase registro y consulta de pacientes, y creación de visitas.
type PatientUseCase struct {
	patientRepo repository.PatientRepository
	visitRepo   repository.VisitRepository
	userRepo    repository.UserRepository
}

// NewPatientUseCase construye el caso de uso.
func NewPatientUseCase(
	patientRepo repository.PatientRepository,
	visitRepo repository.VisitRepository,
	userRepo repository.UserRepository,
) *PatientUseCase {
	return &PatientUseCase{patientRepo: patientRepo, visitRepo: visitRepo, userRepo: userRepo}
}

// Create registra un paciente con número PAT-<año>-<sufijo de epoch ms>.
func (uc *PatientUseCase) Create(in dto.CreatePatientRequest) (*entity.Patient, error) {
	if in.FirstName == "" {
		return nil, domain.ErrInvalidInput
	}
	var dob *time.Time
	if in.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", in.DateOfBirth)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dob = &parsed
	}
	now := time.Now()
	p := &entity.Patient{
		ID:                 uuid.New().String(),
		RegistrationNumber: fmt.Sprintf("PAT-%d-%06d", now.Year(), now.UnixMilli()%1_000_000),
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		DateOfBirth:        dob,
		Gender:             in.Gender,
		Phone:              in.Phone,
		Address:            in.Address,
		BloodType:          in.BloodType,
		Allergies:          in.Allergies,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.patientRepo.Create(p); err != nil {
		return nil, fmt.Errorf("crear paciente: %w", err)
	}
	return p, nil
}

// GetByID obtiene un paciente; domain.ErrNotFound si no existe.
func (uc *PatientUseCase) GetByID(id string) (*entity.Patient, error) {
	p, err := uc.patientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// List lista pacientes paginados.
func (uc *PatientUseCase) List(limit, offset int) ([]*entity.Patient, error) {
	return uc.patientRepo.List(limit, offset)
}

// CreateVisit abre una visita en estado waiting para el paciente.
func (uc *PatientUseCase) CreateVisit(in dto.CreateVisitRequest) (*entity.Visit, error) {
	if in.PatientID == "" || in.AttendingDoctorID == "" {
		return nil, domain.ErrInvalidInput
	}
	patient, err := uc.patientRepo.GetByID(in.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domain.ErrNotFound
	}
	doctor, err := uc.userRepo.GetByID(in.AttendingDoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	v := &entity.Visit{
		ID:                uuid.New().String(),
		PatientID:         in.PatientID,
		AttendingDoctorID: in.AttendingDoctorID,
		Reason:            in.Reason,
		Status:            entity.VisitStatusWaiting,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.visitRepo.Create(v); err != nil {
		return nil, fmt.Errorf("crear visita: %w", err)
	}
	return v, nil
}
