package dto

import "time"

// RequestAdmissionRequest cuerpo de POST /api/admissions/request.
type RequestAdmissionRequest struct {
	PatientID       string `json:"patient_id"`
	VisitID         string `json:"visit_id"`
	AdmissionReason string `json:"admission_reason"`
	WardType        string `json:"ward_type"` // vacío = general
	Urgency         string `json:"urgency"`   // vacío = routine
	Diagnosis       string `json:"diagnosis"`
	TreatmentPlan   string `json:"treatment_plan"`
}

// RequestAdmissionResponse resultado de la solicitud de admisión.
type RequestAdmissionResponse struct {
	AdmissionID     string `json:"admission_id"`
	AdmissionNumber string `json:"admission_number"`
	WardAssigned    string `json:"ward_assigned"`
	WardID          string `json:"ward_id"`
	Status          string `json:"status"`
}

// ApproveAdmissionRequest cuerpo de POST /api/admissions/:id/approve.
// BedID vacío activa la selección automática de cama.
type ApproveAdmissionRequest struct {
	BedID            string `json:"bed_id"`
	AssignedDoctorID string `json:"assigned_doctor_id"`
}

// ApproveAdmissionResponse resultado de la aprobación.
type ApproveAdmissionResponse struct {
	AdmissionID string `json:"admission_id"`
	WardName    string `json:"ward_name"`
	BedNumber   string `json:"bed_number"`
}

// AdmissionDTO proyección JSON de una admisión.
type AdmissionDTO struct {
	ID                string     `json:"id"`
	AdmissionNumber   string     `json:"admission_number"`
	PatientID         string     `json:"patient_id"`
	VisitID           string     `json:"visit_id"`
	WardID            string     `json:"ward_id"`
	BedID             *string    `json:"bed_id"`
	AttendingDoctorID string     `json:"attending_doctor_id"`
	AssignedDoctorID  *string    `json:"assigned_doctor_id"`
	RequestedBy       string     `json:"requested_by"`
	ApprovedBy        *string    `json:"approved_by"`
	Status            string     `json:"admission_status"`
	AdmissionReason   string     `json:"admission_reason"`
	Diagnosis         string     `json:"diagnosis"`
	TreatmentPlan     string     `json:"treatment_plan"`
	Urgency           string     `json:"urgency"`
	DischargedAt      *time.Time `json:"discharged_at"`
	CreatedAt         time.Time  `json:"created_at"`
}
