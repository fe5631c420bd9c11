package entity

import "time"

// Tipos de pabellón.
const (
	WardTypeGeneral   = "general"
	WardTypeICU       = "icu"
	WardTypePediatric = "pediatric"
	WardTypeMaternity = "maternity"
	WardTypeIsolation = "isolation"
)

// Ward representa un pabellón: unidad física que agrupa camas de un mismo tipo.
// AvailableBeds es un contador desnormalizado; se muta únicamente dentro de la
// misma transacción que cambia el estado de la cama, con guarda condicional.
type Ward struct {
	ID            string
	Name          string
	WardType      string
	TotalBeds     int
	AvailableBeds int
	HeadNurseID   *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
