package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

// DepartmentUseCase alta y listado de departamentos.
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// Create crea un departamento.
func (uc *DepartmentUseCase) Create(name, description string) (*entity.Department, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	d := &entity.Department{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

// List lista todos los departamentos.
func (uc *DepartmentUseCase) List() ([]*entity.Department, error) {
	return uc.repo.List()
}
