package entity

import "time"

// Estados de una orden de laboratorio y de sus pruebas.
const (
	LabOrderStatusOrdered    = "ordered"
	LabOrderStatusInProcess  = "in_process"
	LabOrderStatusCompleted  = "completed"

	LabTestStatusPending   = "pending"
	LabTestStatusResulted  = "resulted"
)

// LabOrder orden de laboratorio para un paciente, con una o más pruebas.
type LabOrder struct {
	ID          string
	OrderNumber string // LAB-<año>-<6 dígitos>
	PatientID   string
	VisitID     *string
	OrderedBy   string
	Status      string
	Priority    string // routine, urgent
	Notes       string
	Tests       []LabOrderTest
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LabOrderTest una prueba individual dentro de una orden.
type LabOrderTest struct {
	ID         string
	LabOrderID string
	TestName   string
	TestCode   string
	Result     *string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
