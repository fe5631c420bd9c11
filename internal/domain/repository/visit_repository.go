package repository

import "github.com/jhoicas/Hospitalario-api/internal/domain/entity"

// VisitRepository define el puerto de persistencia para Visit.
type VisitRepository interface {
	Create(visit *entity.Visit) error
	GetByID(id string) (*entity.Visit, error)
	// UpdateStatus cambia el estado de la visita (ej. a admission_requested).
	// Es un efecto best-effort del flujo de admisión.
	UpdateStatus(id, status string) error
	ListByPatient(patientID string, limit, offset int) ([]*entity.Visit, error)
}
