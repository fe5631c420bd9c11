package dto

import "time"

// CreateLabOrderRequest cuerpo de POST /api/lab-orders.
type CreateLabOrderRequest struct {
	PatientID string              `json:"patient_id"`
	VisitID   string              `json:"visit_id"`
	Priority  string              `json:"priority"` // vacío = routine
	Notes     string              `json:"notes"`
	Tests     []LabOrderTestInput `json:"tests"`
}

// LabOrderTestInput una prueba solicitada dentro de la orden.
type LabOrderTestInput struct {
	TestName string `json:"test_name"`
	TestCode string `json:"test_code"`
}

// SetLabResultRequest cuerpo de POST /api/lab-orders/tests/:testId/result.
type SetLabResultRequest struct {
	Result string `json:"result"`
}

// LabOrderDTO proyección JSON de una orden con sus pruebas.
type LabOrderDTO struct {
	ID          string            `json:"id"`
	OrderNumber string            `json:"order_number"`
	PatientID   string            `json:"patient_id"`
	VisitID     *string           `json:"visit_id"`
	OrderedBy   string            `json:"ordered_by"`
	Status      string            `json:"status"`
	Priority    string            `json:"priority"`
	Notes       string            `json:"notes"`
	Tests       []LabOrderTestDTO `json:"tests"`
	CreatedAt   time.Time         `json:"created_at"`
}

// LabOrderTestDTO proyección de una prueba individual.
type LabOrderTestDTO struct {
	ID       string  `json:"id"`
	TestName string  `json:"test_name"`
	TestCode string  `json:"test_code"`
	Result   *string `json:"result"`
	Status   string  `json:"status"`
}
