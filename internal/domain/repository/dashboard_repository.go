package repository

// WardOccupancy fila agregada de ocupación por pabellón para el dashboard.
type WardOccupancy struct {
	WardID        string
	WardName      string
	WardType      string
	TotalBeds     int
	AvailableBeds int
	OccupiedBeds  int
}

// DashboardRepository consultas agregadas de solo lectura para el panel.
type DashboardRepository interface {
	WardOccupancies() ([]WardOccupancy, error)
	CountPendingSupplyRequests() (int, error)
	CountActiveAdmissionRequests() (int, error)
	CountLowPharmacyStock() (int, error)
}
