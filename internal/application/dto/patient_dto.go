package dto

import "time"

// CreatePatientRequest cuerpo de POST /api/patients.
type CreatePatientRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	Gender      string `json:"gender"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	BloodType   string `json:"blood_type"`
	Allergies   string `json:"allergies"`
}

// PatientDTO proyección JSON de un paciente.
type PatientDTO struct {
	ID                 string     `json:"id"`
	RegistrationNumber string     `json:"registration_number"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	DateOfBirth        *time.Time `json:"date_of_birth"`
	Gender             string     `json:"gender"`
	Phone              string     `json:"phone"`
	Address            string     `json:"address"`
	BloodType          string     `json:"blood_type"`
	Allergies          string     `json:"allergies"`
	CreatedAt          time.Time  `json:"created_at"`
}

// CreateVisitRequest cuerpo de POST /api/visits.
type CreateVisitRequest struct {
	PatientID         string `json:"patient_id"`
	AttendingDoctorID string `json:"attending_doctor_id"`
	Reason            string `json:"reason"`
}

// VisitDTO proyección JSON de una visita.
type VisitDTO struct {
	ID                string    `json:"id"`
	PatientID         string    `json:"patient_id"`
	AttendingDoctorID string    `json:"attending_doctor_id"`
	Reason            string    `json:"reason"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}
