package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

var _ repository.SupplyRequestRepository = (*SupplyRequestRepo)(nil)

// SupplyRequestRepo implementación del puerto SupplyRequestRepository sobre PostgreSQL (usable con pool o tx).
type SupplyRequestRepo struct {
	q Querier
}

// NewSupplyRequestRepository construye el adaptador de persistencia para solicitudes de insumos. Pasar pool o tx (Querier).
func NewSupplyRequestRepository(q Querier) *SupplyRequestRepo {
	return &SupplyRequestRepo{q: q}
}

const supplyRequestColumns = `id, ward_id, supply_id, pharmacy_supply_id, supply_name, quantity_requested, request_status, requested_by, approved_by, delivered_quantity, delivered_date, notes, created_at, updated_at`

// Create persiste una nueva solicitud de insumos (status 'pending').
func (r *SupplyRequestRepo) Create(request *entity.SupplyRequest) error {
	query := `
		INSERT INTO supply_requests (` + supplyRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.WardID, request.SupplyID, request.PharmacySupplyID,
		request.SupplyName, request.QuantityRequested, request.Status, request.RequestedBy,
		request.ApprovedBy, request.DeliveredQuantity, request.DeliveredDate, request.Notes,
		request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supply request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *SupplyRequestRepo) GetByID(id string) (*entity.SupplyRequest, error) {
	var s entity.SupplyRequest
	err := r.q.QueryRow(context.Background(),
		`SELECT `+supplyRequestColumns+` FROM supply_requests WHERE id = $1`, id).Scan(
		&s.ID, &s.WardID, &s.SupplyID, &s.PharmacySupplyID, &s.SupplyName,
		&s.QuantityRequested, &s.Status, &s.RequestedBy, &s.ApprovedBy,
		&s.DeliveredQuantity, &s.DeliveredDate, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply request: %w", err)
	}
	return &s, nil
}

// List lista solicitudes filtradas opcionalmente por pabellón y estado.
func (r *SupplyRequestRepo) List(wardID, status string, limit, offset int) ([]*entity.SupplyRequest, error) {
	query := `SELECT ` + supplyRequestColumns + ` FROM supply_requests WHERE 1=1`
	args := []any{limit, offset}
	if wardID != "" {
		args = append(args, wardID)
		query += fmt.Sprintf(" AND ward_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND request_status = $%d", len(args))
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list supply requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplyRequest
	for rows.Next() {
		var s entity.SupplyRequest
		if err := rows.Scan(&s.ID, &s.WardID, &s.SupplyID, &s.PharmacySupplyID, &s.SupplyName,
			&s.QuantityRequested, &s.Status, &s.RequestedBy, &s.ApprovedBy,
			&s.DeliveredQuantity, &s.DeliveredDate, &s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supply request: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// MarkApproved aprueba la solicitud condicional a que siga 'pending'. Cero
// filas afectadas: ya fue procesada, el traslado no debe repetirse.
func (r *SupplyRequestRepo) MarkApproved(id, approvedBy string, delivered decimal.Decimal, date time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE supply_requests
		 SET request_status = 'approved', approved_by = $2, delivered_quantity = $3,
		     delivered_date = $4, updated_at = now()
		 WHERE id = $1 AND request_status = 'pending'`,
		id, approvedBy, delivered, date,
	)
	if err != nil {
		return fmt.Errorf("approve supply request: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAlreadyProcessed
	}
	return nil
}
