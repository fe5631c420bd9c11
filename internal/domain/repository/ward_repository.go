package repository

import "github.com/jhoicas/Hospitalario-api/internal/domain/entity"

// WardRepository define el puerto de persistencia para Ward.
// Los métodos de contador usan updates condicionales: cero filas afectadas se
// traduce en el error de regla de negocio, nunca se decide con una lectura previa.
type WardRepository interface {
	Create(ward *entity.Ward) error
	GetByID(id string) (*entity.Ward, error)
	List(limit, offset int) ([]*entity.Ward, error)
	// FindAvailableByType devuelve el pabellón activo del tipo dado con más
	// camas disponibles (available_beds > 0, orden descendente). nil si ninguno.
	FindAvailableByType(wardType string) (*entity.Ward, error)
	// DecrementAvailableBeds resta 1 con guarda available_beds > 0.
	// Retorna domain.ErrNoCapacity si no afecta filas.
	DecrementAvailableBeds(id string) error
	// IncrementAvailableBeds suma 1 con techo en total_beds.
	IncrementAvailableBeds(id string) error
}
