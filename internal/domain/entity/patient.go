package entity

import "time"

// Patient representa un paciente registrado en el hospital.
type Patient struct {
	ID                 string
	RegistrationNumber string // PAT-<año>-<sufijo>
	FirstName          string
	LastName           string
	DateOfBirth        *time.Time
	Gender             string
	Phone              string
	Address            string
	BloodType          string
	Allergies          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName nombre completo para notificaciones y documentos.
func (p *Patient) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
