package admission_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hospitalario-api/internal/application/admission"
	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de prueba
// ──────────────────────────────────────────────────────────────────────────────

type admissionEnv struct {
	admissions *memAdmissions
	beds       *memBeds
	wards      *memWards
	patients   *memPatients
	users      *memUsers
	visits     *memVisits
	tx         *memTxRunner
	notifier   *recordingNotifier
	log        *logger.Logger
}

func newAdmissionEnv(t *testing.T) *admissionEnv {
	t.Helper()
	env := &admissionEnv{
		admissions: newMemAdmissions(),
		beds:       newMemBeds(),
		wards:      newMemWards(),
		patients:   newMemPatients(),
		users:      newMemUsers(),
		visits:     newMemVisits(),
		notifier:   &recordingNotifier{},
		log:        logger.New(logger.Config{Env: "production", Level: "error"}),
	}
	env.tx = &memTxRunner{adm: env.admissions, beds: env.beds, wards: env.wards}
	return env
}

func (env *admissionEnv) approveUC() *admission.ApproveAdmissionUseCase {
	return admission.NewApproveAdmissionUseCase(
		env.tx, env.admissions, env.wards, env.beds, env.notifier, env.log,
	)
}

func (env *admissionEnv) seedWard(t *testing.T, id, name, wardType string, total, available int, headNurseID *string) {
	t.Helper()
	require.NoError(t, env.wards.Create(&entity.Ward{
		ID:            id,
		Name:          name,
		WardType:      wardType,
		TotalBeds:     total,
		AvailableBeds: available,
		HeadNurseID:   headNurseID,
		IsActive:      true,
	}))
}

func (env *admissionEnv) seedBed(t *testing.T, id, wardID, number, status string) {
	t.Helper()
	require.NoError(t, env.beds.CreateBatch([]*entity.Bed{{
		ID:        id,
		WardID:    wardID,
		BedNumber: number,
		BedType:   "standard",
		Status:    status,
	}}))
}

func (env *admissionEnv) seedAdmission(t *testing.T, id, wardID, status string) *entity.Admission {
	t.Helper()
	adm := &entity.Admission{
		ID:                id,
		AdmissionNumber:   "ADM-2026-000123",
		PatientID:         "patient-1",
		VisitID:           "visit-1",
		WardID:            wardID,
		AttendingDoctorID: "doctor-1",
		RequestedBy:       "doctor-1",
		Status:            status,
		AdmissionReason:   "neumonía adquirida en comunidad",
		Urgency:           entity.UrgencyUrgent,
	}
	require.NoError(t, env.admissions.Create(adm))
	return adm
}

// ──────────────────────────────────────────────────────────────────────────────
// Aprobación con asignación automática de cama
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_AutoEligePrimeraCamaPorNumero(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedWard(t, "ward-1", "Medicina Interna", entity.WardTypeGeneral, 3, 2, nil)
	env.seedBed(t, "bed-2", "ward-1", "B-002", entity.BedStatusAvailable)
	env.seedBed(t, "bed-1", "ward-1", "B-001", entity.BedStatusAvailable)
	env.seedAdmission(t, "adm-1", "ward-1", entity.AdmissionStatusActive)

	resp, err := env.approveUC().Approve(context.Background(), "adm-1", "nurse-1", dto.ApproveAdmissionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "B-001", resp.BedNumber, "debe elegir la cama con menor bed_number")
	assert.Equal(t, "Medicina Interna", resp.WardName)

	adm, _ := env.admissions.GetByID("adm-1")
	require.NotNil(t, adm.BedID)
	assert.Equal(t, entity.AdmissionStatusApproved, adm.Status)
	assert.Equal(t, "bed-1", *adm.BedID)
	require.NotNil(t, adm.ApprovedBy)
	assert.Equal(t, "nurse-1", *adm.ApprovedBy)

	bed, _ := env.beds.GetByID("bed-1")
	assert.Equal(t, entity.BedStatusOccupied, bed.Status)
	require.NotNil(t, bed.CurrentPatientID)
	assert.Equal(t, "patient-1", *bed.CurrentPatientID)

	ward, _ := env.wards.GetByID("ward-1")
	assert.Equal(t, 1, ward.AvailableBeds, "el contador del pabellón baja en 1")

	require.Len(t, env.notifier.sent, 1)
	assert.Equal(t, "doctor-1", env.notifier.sent[0].UserID)
	assert.Equal(t, entity.NotificationTypeAdmissionApproved, env.notifier.sent[0].Type)
}

func TestApprove_ConMedicoAsignadoNotificaADos(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedWard(t, "ward-1", "UCI", entity.WardTypeICU, 2, 1, nil)
	env.seedBed(t, "bed-1", "ward-1", "U-001", entity.BedStatusAvailable)
	env.seedAdmission(t, "adm-1", "ward-1", entity.AdmissionStatusActive)

	_, err := env.approveUC().Approve(context.Background(), "adm-1", "nurse-1", dto.ApproveAdmissionRequest{
		AssignedDoctorID: "doctor-2",
	})
	require.NoError(t, err)

	adm, _ := env.admissions.GetByID("adm-1")
	require.NotNil(t, adm.AssignedDoctorID)
	assert.Equal(t, "doctor-2", *adm.AssignedDoctorID)

	require.Len(t, env.notifier.sent, 2)
	assert.Equal(t, "doctor-2", env.notifier.sent[1].UserID)
	assert.Equal(t, entity.NotificationTypeDoctorAssigned, env.notifier.sent[1].Type)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cama explícita
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_CamaExplicitaDeOtroPabellon(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedWard(t, "ward-1", "Medicina Interna", entity.WardTypeGeneral, 2, 2, nil)
	env.seedWard(t, "ward-2", "Pediatría", entity.WardTypePediatric, 2, 2, nil)
	env.seedBed(t, "bed-otro", "ward-2", "P-001", entity.BedStatusAvailable)
	env.seedAdmission(t, "adm-1", "ward-1", entity.AdmissionStatusActive)

	_, err := env.approveUC().Approve(context.Background(), "adm-1", "nurse-1", dto.ApproveAdmissionRequest{
		BedID: "bed-otro",
	})
	require.ErrorIs(t, err, domain.ErrInvalidBed)
}

func TestApprove_CamaExplicitaOcupada(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedWard(t, "ward-1", "Medicina Interna", entity.WardTypeGeneral, 2, 1, nil)
	env.seedBed(t, "bed-1", "ward-1", "B-001", entity.BedStatusOccupied)
	env.seedAdmission(t, "adm-1", "ward-1", entity.AdmissionStatusActive)

	_, err := env.approveUC().Approve(context.Background(), "adm-1", "nurse-1", dto.ApproveAdmissionRequest{
		BedID: "bed-1",
	})
	require.ErrorIs(t, err, domain.ErrBedUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Capacidad y estados terminales
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_SinCamasDisponibles(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedWard(t, "ward-1", "Medicina Interna", entity.WardTypeGeneral, 1, 0, nil)
	env.seedBed(t, "bed-1", "ward-1", "B-001", entity.BedStatusOccupied)
	env.seedAdmission(t, "adm-1", "ward-1", entity.AdmissionStatusActive)

	_, err := env.approveUC().Approve(context.Background(), "adm-1", "nurse-1", dto.ApproveAdmissionRequest{})
	require.ErrorIs(t, err, domain.ErrNoCapacity)
	assert.Empty(t, env.notifier.sent)
}

func TestApprove_AdmisionYaProcesada(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedWard(t, "ward-1", "Medicina Interna", entity.WardTypeGeneral, 2, 1, nil)
	env.seedBed(t, "bed-1", "ward-1", "B-001", entity.BedStatusAvailable)
	env.seedAdmission(t, "adm-1", "ward-1", entity.AdmissionStatusApproved)

	_, err := env.approveUC().Approve(context.Background(), "adm-1", "nurse-1", dto.ApproveAdmissionRequest{})
	require.ErrorIs(t, err, domain.ErrAlreadyProcessed)
}

func TestApprove_AdmisionInexistente(t *testing.T) {
	env := newAdmissionEnv(t)

	_, err := env.approveUC().Approve(context.Background(), "no-existe", "nurse-1", dto.ApproveAdmissionRequest{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApprove_EntradaInvalida(t *testing.T) {
	env := newAdmissionEnv(t)

	_, err := env.approveUC().Approve(context.Background(), "adm-1", "", dto.ApproveAdmissionRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: el perdedor de la carrera no deja estado a medias
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_PerdedorDeCarreraRevierteTodo(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedWard(t, "ward-1", "Medicina Interna", entity.WardTypeGeneral, 2, 1, nil)
	env.seedBed(t, "bed-1", "ward-1", "B-001", entity.BedStatusAvailable)
	env.seedAdmission(t, "adm-1", "ward-1", entity.AdmissionStatusActive)

	// Otro proceso ocupa la cama entre la lectura de selectBed y la
	// transacción: el update condicional debe perder y revertir la aprobación.
	env.tx.before = func() {
		require.NoError(t, env.beds.Occupy("bed-1", "patient-otro"))
	}

	_, err := env.approveUC().Approve(context.Background(), "adm-1", "nurse-1", dto.ApproveAdmissionRequest{})
	require.ErrorIs(t, err, domain.ErrBedUnavailable)

	adm, _ := env.admissions.GetByID("adm-1")
	assert.Equal(t, entity.AdmissionStatusActive, adm.Status, "la admisión sigue pendiente")
	assert.Nil(t, adm.BedID)

	ward, _ := env.wards.GetByID("ward-1")
	assert.Equal(t, 1, ward.AvailableBeds, "el contador no se toca en un rollback")
	assert.Empty(t, env.notifier.sent, "sin commit no hay notificaciones")
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta: el espejo de la aprobación
// ──────────────────────────────────────────────────────────────────────────────

func TestDischarge_LiberaCamaYDevuelveCupo(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedWard(t, "ward-1", "Medicina Interna", entity.WardTypeGeneral, 2, 1, nil)
	env.seedBed(t, "bed-1", "ward-1", "B-001", entity.BedStatusOccupied)
	adm := env.seedAdmission(t, "adm-1", "ward-1", entity.AdmissionStatusApproved)
	bedID := "bed-1"
	env.admissions.items[adm.ID].BedID = &bedID

	uc := admission.NewDischargeAdmissionUseCase(env.tx, env.admissions, env.notifier)
	require.NoError(t, uc.Discharge(context.Background(), "adm-1", "nurse-1"))

	got, _ := env.admissions.GetByID("adm-1")
	assert.Equal(t, entity.AdmissionStatusDischarged, got.Status)
	require.NotNil(t, got.DischargedAt)
	assert.WithinDuration(t, time.Now(), *got.DischargedAt, 5*time.Second)

	bed, _ := env.beds.GetByID("bed-1")
	assert.Equal(t, entity.BedStatusAvailable, bed.Status)
	assert.Nil(t, bed.CurrentPatientID)

	ward, _ := env.wards.GetByID("ward-1")
	assert.Equal(t, 2, ward.AvailableBeds)

	require.Len(t, env.notifier.sent, 1)
	assert.Equal(t, "doctor-1", env.notifier.sent[0].UserID)
}

func TestDischarge_AdmisionSinAprobar(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedWard(t, "ward-1", "Medicina Interna", entity.WardTypeGeneral, 2, 2, nil)
	env.seedAdmission(t, "adm-1", "ward-1", entity.AdmissionStatusActive)

	uc := admission.NewDischargeAdmissionUseCase(env.tx, env.admissions, env.notifier)
	err := uc.Discharge(context.Background(), "adm-1", "nurse-1")
	require.ErrorIs(t, err, domain.ErrConflict)
}
