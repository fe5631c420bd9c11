package entity

import "time"

// Estados de una cama.
const (
	BedStatusAvailable   = "available"
	BedStatusOccupied    = "occupied"
	BedStatusMaintenance = "maintenance"
)

// Bed representa una cama: la unidad de capacidad física de un pabellón.
// Una cama pertenece a exactamente un pabellón durante toda su vida y se asigna
// a lo sumo a un paciente a la vez.
type Bed struct {
	ID               string
	WardID           string
	BedNumber        string
	BedType          string
	Status           string
	CurrentPatientID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
