package repository

import (
	"time"

	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

// AdmissionRepository define el puerto de persistencia para Admission.
type AdmissionRepository interface {
	Create(admission *entity.Admission) error
	GetByID(id string) (*entity.Admission, error)
	List(status string, limit, offset int) ([]*entity.Admission, error)
	// MarkApproved fija status='approved', cama, aprobador y médico asignado
	// opcional, de forma condicional (WHERE admission_status = 'active').
	// Retorna domain.ErrAlreadyProcessed si no afecta filas.
	MarkApproved(id, bedID, approvedBy string, assignedDoctorID *string) error
	// MarkDischarged fija status='discharged' y la fecha de alta, condicional
	// a que la admisión esté approved.
	MarkDischarged(id string, at time.Time) error
}
