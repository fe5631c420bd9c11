package repository

import "github.com/jhoicas/Hospitalario-api/internal/domain/entity"

// LabOrderRepository puerto para órdenes de laboratorio y sus pruebas.
type LabOrderRepository interface {
	// Create persiste la orden y sus pruebas.
	Create(order *entity.LabOrder) error
	// GetByID devuelve la orden con pruebas incluidas.
	GetByID(id string) (*entity.LabOrder, error)
	ListByPatient(patientID string, limit, offset int) ([]*entity.LabOrder, error)
	// SetTestResult registra el resultado de una prueba y la marca resulted.
	SetTestResult(testID, result string) error
}
