package entity

import "time"

// Roles del personal del hospital.
const (
	RoleAdmin      = "admin"
	RoleDoctor     = "doctor"
	RoleNurse      = "nurse"
	RolePharmacist = "pharmacist"
	RoleLab        = "lab"
)

// User perfil de un usuario del sistema (personal clínico y administrativo).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	DepartmentID *string
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
