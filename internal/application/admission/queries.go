package admission

import (
	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura de admisiones.
type QueryUseCase struct {
	admissionRepo repository.AdmissionRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(admissionRepo repository.AdmissionRepository) *QueryUseCase {
	return &QueryUseCase{admissionRepo: admissionRepo}
}

// GetByID obtiene una admisión; domain.ErrNotFound si no existe.
func (uc *QueryUseCase) GetByID(id string) (*entity.Admission, error) {
	adm, err := uc.admissionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if adm == nil {
		return nil, domain.ErrNotFound
	}
	return adm, nil
}

// List lista admisiones, opcionalmente filtradas por estado.
func (uc *QueryUseCase) List(status string, limit, offset int) ([]*entity.Admission, error) {
	return uc.admissionRepo.List(status, limit, offset)
}
