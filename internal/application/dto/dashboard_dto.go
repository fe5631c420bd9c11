package dto

import "time"

// WardOccupancyDTO ocupación de un pabellón para el panel.
type WardOccupancyDTO struct {
	WardID        string  `json:"ward_id"`
	WardName      string  `json:"ward_name"`
	WardType      string  `json:"ward_type"`
	TotalBeds     int     `json:"total_beds"`
	AvailableBeds int     `json:"available_beds"`
	OccupiedBeds  int     `json:"occupied_beds"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// DashboardSummaryDTO agregados para el panel administrativo.
type DashboardSummaryDTO struct {
	Wards                  []WardOccupancyDTO `json:"wards"`
	PendingSupplyRequests  int                `json:"pending_supply_requests"`
	ActiveAdmissionRequests int               `json:"active_admission_requests"`
	LowPharmacyStockItems  int                `json:"low_pharmacy_stock_items"`
	GeneratedAt            time.Time          `json:"generated_at"`
}

// NotificationDTO proyección JSON de una alerta.
type NotificationDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
