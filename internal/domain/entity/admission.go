package entity

import "time"

// Estados de una admisión. "active" es la solicitud pendiente de aprobación.
const (
	AdmissionStatusActive     = "active"
	AdmissionStatusApproved   = "approved"
	AdmissionStatusDischarged = "discharged"
)

// Niveles de urgencia de la solicitud de admisión.
const (
	UrgencyRoutine  = "routine"
	UrgencyUrgent   = "urgent"
	UrgencyCritical = "critical"
)

// Admission registra la estancia de un paciente: de la solicitud del médico,
// pasando por la asignación de pabellón y cama, hasta el alta.
// Una admisión liga exactamente un paciente, un pabellón y a lo sumo una cama.
type Admission struct {
	ID                string
	AdmissionNumber   string // ADM-<año>-<6 dígitos>
	PatientID         string
	VisitID           string
	WardID            string
	BedID             *string
	AttendingDoctorID string
	AssignedDoctorID  *string
	RequestedBy       string
	ApprovedBy        *string
	Status            string
	AdmissionReason   string
	Diagnosis         string
	TreatmentPlan     string
	Urgency           string
	DischargedAt      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
