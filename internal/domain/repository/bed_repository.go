package repository

import "github.com/jhoicas/Hospitalario-api/internal/domain/entity"

// BedRepository define el puerto de persistencia para Bed.
type BedRepository interface {
	CreateBatch(beds []*entity.Bed) error
	GetByID(id string) (*entity.Bed, error)
	// GetInWard busca la cama por id restringida a un pabellón; nil si no pertenece.
	GetInWard(bedID, wardID string) (*entity.Bed, error)
	// FirstAvailable devuelve la primera cama disponible del pabellón,
	// ordenada por bed_number ascendente (elección determinista documentada).
	FirstAvailable(wardID string) (*entity.Bed, error)
	ListByWard(wardID string) ([]*entity.Bed, error)
	// Occupy marca la cama occupied y liga al paciente, de forma condicional
	// (WHERE status = 'available'). Retorna domain.ErrBedUnavailable si no
	// afecta filas: de dos aprobaciones concurrentes solo una gana.
	Occupy(bedID, patientID string) error
	// Release libera la cama (occupied -> available, paciente desligado).
	Release(bedID string) error
}
