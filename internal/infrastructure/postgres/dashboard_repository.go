package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el panel de control.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de consultas del dashboard.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// WardOccupancies devuelve la ocupación por pabellón. Las camas ocupadas se
// cuentan desde beds, no desde el contador desnormalizado, para que el panel
// refleje la verdad física.
func (r *DashboardRepo) WardOccupancies() ([]repository.WardOccupancy, error) {
	query := `
		SELECT w.id, w.name, w.ward_type, w.total_beds, w.available_beds,
		       count(b.id) FILTER (WHERE b.status = 'occupied') AS occupied
		FROM wards w
		LEFT JOIN beds b ON b.ward_id = w.id
		WHERE w.is_active = true
		GROUP BY w.id, w.name, w.ward_type, w.total_beds, w.available_beds
		ORDER BY w.name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ward occupancies: %w", err)
	}
	defer rows.Close()
	var list []repository.WardOccupancy
	for rows.Next() {
		var o repository.WardOccupancy
		if err := rows.Scan(&o.WardID, &o.WardName, &o.WardType, &o.TotalBeds,
			&o.AvailableBeds, &o.OccupiedBeds); err != nil {
			return nil, fmt.Errorf("scan ward occupancy: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// CountPendingSupplyRequests cuenta las solicitudes de insumos pendientes.
func (r *DashboardRepo) CountPendingSupplyRequests() (int, error) {
	return r.count(`SELECT count(*) FROM supply_requests WHERE request_status = 'pending'`)
}

// CountActiveAdmissionRequests cuenta las solicitudes de admisión sin aprobar.
func (r *DashboardRepo) CountActiveAdmissionRequests() (int, error) {
	return r.count(`SELECT count(*) FROM admissions WHERE admission_status = 'active'`)
}

// CountLowPharmacyStock cuenta los insumos de farmacia en o bajo el mínimo.
func (r *DashboardRepo) CountLowPharmacyStock() (int, error) {
	return r.count(`SELECT count(*) FROM pharmacy_stock WHERE current_stock <= minimum_stock_level`)
}

func (r *DashboardRepo) count(query string) (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), query).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}
