package entity

import "time"

// Tipos de notificación.
const (
	NotificationTypeAdmissionRequest  = "admission_request"
	NotificationTypeAdmissionApproved = "admission_approved"
	NotificationTypeDoctorAssigned    = "doctor_assigned"
	NotificationTypeSupplyDelivery    = "supply_delivery"
	NotificationTypeLabResult         = "lab_result"
)

// Notification alerta legible para un usuario. Se inserta fire-and-forget:
// un fallo al crearla jamás bloquea ni revierte el flujo que la originó.
type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Type      string
	Read      bool
	CreatedAt time.Time
}
