package repository

import "github.com/jhoicas/Hospitalario-api/internal/domain/entity"

// DepartmentRepository puerto de persistencia para Department.
type DepartmentRepository interface {
	Create(department *entity.Department) error
	List() ([]*entity.Department, error)
}
