package entity

import "time"

// Estados del ciclo de vida de una visita ambulatoria.
const (
	VisitStatusWaiting            = "waiting"
	VisitStatusInConsultation     = "in_consultation"
	VisitStatusAdmissionRequested = "admission_requested"
	VisitStatusClosed             = "closed"
)

// Visit representa una visita del paciente (cola de consulta) previa a una posible admisión.
type Visit struct {
	ID                string
	PatientID         string
	AttendingDoctorID string
	Reason            string
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
