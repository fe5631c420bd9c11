package admission_test

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hospitalario-api/internal/application/admission"
	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

func (env *admissionEnv) requestUC() *admission.RequestAdmissionUseCase {
	return admission.NewRequestAdmissionUseCase(
		env.patients, env.users, env.visits, env.wards, env.admissions,
		env.notifier, env.log,
	)
}

func (env *admissionEnv) seedPatientAndDoctor(t *testing.T) {
	t.Helper()
	require.NoError(t, env.patients.Create(&entity.Patient{
		ID:        "patient-1",
		FirstName: "María",
		LastName:  "Quispe",
	}))
	require.NoError(t, env.users.Create(&entity.User{
		ID:   "doctor-1",
		Name: "Dr. Rojas",
		Role: entity.RoleDoctor,
	}))
}

func validRequest() dto.RequestAdmissionRequest {
	return dto.RequestAdmissionRequest{
		PatientID:       "patient-1",
		VisitID:         "visit-1",
		AdmissionReason: "neumonía adquirida en comunidad",
	}
}

// ──────────────────────────────────────────────────────────────────────────────

func TestRequest_EligePabellonConMasCamasDisponibles(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedPatientAndDoctor(t)
	nurse := "nurse-jefa"
	env.seedWard(t, "ward-lleno", "General A", entity.WardTypeGeneral, 10, 2, nil)
	env.seedWard(t, "ward-amplio", "General B", entity.WardTypeGeneral, 10, 7, &nurse)

	adm, ward, err := env.requestUC().Request(context.Background(), "doctor-1", validRequest())
	require.NoError(t, err)
	assert.Equal(t, "ward-amplio", ward.ID, "greedy: el pabellón del tipo pedido con más cupo")
	assert.Equal(t, "ward-amplio", adm.WardID)
	assert.Equal(t, entity.AdmissionStatusActive, adm.Status)
	assert.Nil(t, adm.BedID, "la cama no se reserva en la solicitud")
	assert.Equal(t, "doctor-1", adm.RequestedBy)
	assert.Equal(t, entity.UrgencyRoutine, adm.Urgency, "urgencia por defecto")
	assert.Regexp(t, regexp.MustCompile(`^ADM-\d{4}-\d{6}$`), adm.AdmissionNumber)

	// Efectos laterales del camino feliz.
	assert.Equal(t, entity.VisitStatusAdmissionRequested, env.visits.statuses["visit-1"])
	require.Len(t, env.notifier.sent, 1)
	assert.Equal(t, nurse, env.notifier.sent[0].UserID)
	assert.Equal(t, entity.NotificationTypeAdmissionRequest, env.notifier.sent[0].Type)

	stored, _ := env.admissions.GetByID(adm.ID)
	require.NotNil(t, stored)
}

func TestRequest_SinCupoDelTipoPedido(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedPatientAndDoctor(t)
	env.seedWard(t, "ward-1", "General A", entity.WardTypeGeneral, 2, 0, nil)

	in := validRequest()
	in.WardType = entity.WardTypeICU

	_, _, err := env.requestUC().Request(context.Background(), "doctor-1", in)
	require.ErrorIs(t, err, domain.ErrNoCapacity)
	assert.Empty(t, env.admissions.items, "sin pabellón no se crea nada")
	assert.Empty(t, env.notifier.sent)
}

func TestRequest_PacienteInexistente(t *testing.T) {
	env := newAdmissionEnv(t)
	require.NoError(t, env.users.Create(&entity.User{ID: "doctor-1", Role: entity.RoleDoctor}))
	env.seedWard(t, "ward-1", "General A", entity.WardTypeGeneral, 2, 2, nil)

	_, _, err := env.requestUC().Request(context.Background(), "doctor-1", validRequest())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRequest_EntradaIncompleta(t *testing.T) {
	env := newAdmissionEnv(t)
	in := validRequest()
	in.AdmissionReason = ""

	_, _, err := env.requestUC().Request(context.Background(), "doctor-1", in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRequest_FalloAlActualizarVisitaNoRompeLaAdmision(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedPatientAndDoctor(t)
	env.seedWard(t, "ward-1", "General A", entity.WardTypeGeneral, 2, 2, nil)
	env.visits.updateErr = errors.New("visita bloqueada")

	adm, _, err := env.requestUC().Request(context.Background(), "doctor-1", validRequest())
	require.NoError(t, err, "el efecto sobre la visita es best-effort")

	stored, _ := env.admissions.GetByID(adm.ID)
	require.NotNil(t, stored)
	assert.Equal(t, entity.AdmissionStatusActive, stored.Status)
}

func TestRequest_SinJefaDeEnfermeriaNoNotifica(t *testing.T) {
	env := newAdmissionEnv(t)
	env.seedPatientAndDoctor(t)
	env.seedWard(t, "ward-1", "General A", entity.WardTypeGeneral, 2, 2, nil)

	_, _, err := env.requestUC().Request(context.Background(), "doctor-1", validRequest())
	require.NoError(t, err)
	assert.Empty(t, env.notifier.sent)
}

// ──────────────────────────────────────────────────────────────────────────────

func TestNewAdmissionNumber_Formato(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 30, 0, 123_000_000, time.UTC)
	num := admission.NewAdmissionNumber(now)

	suffix := now.UnixMilli() % 1_000_000
	assert.Equal(t, fmt.Sprintf("ADM-2026-%06d", suffix), num)
	assert.Len(t, num, 15, "el sufijo va con relleno de ceros a 6 dígitos")
	assert.Regexp(t, regexp.MustCompile(`^ADM-2026-\d{6}$`), num)
}
