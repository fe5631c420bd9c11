package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

var _ repository.WardRepository = (*WardRepo)(nil)

// WardRepo implementación del puerto WardRepository sobre PostgreSQL (usable con pool o tx).
type WardRepo struct {
	q Querier
}

// NewWardRepository construye el adaptador de persistencia para pabellones. Pasar pool o tx (Querier).
func NewWardRepository(q Querier) *WardRepo {
	return &WardRepo{q: q}
}

const wardColumns = `id, name, ward_type, total_beds, available_beds, head_nurse_id, is_active, created_at, updated_at`

func scanWard(row pgx.Row) (*entity.Ward, error) {
	var w entity.Ward
	err := row.Scan(&w.ID, &w.Name, &w.WardType, &w.TotalBeds, &w.AvailableBeds,
		&w.HeadNurseID, &w.IsActive, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste un nuevo pabellón.
func (r *WardRepo) Create(ward *entity.Ward) error {
	query := `
		INSERT INTO wards (` + wardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		ward.ID, ward.Name, ward.WardType, ward.TotalBeds, ward.AvailableBeds,
		ward.HeadNurseID, ward.IsActive, ward.CreatedAt, ward.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ward: %w", err)
	}
	return nil
}

// GetByID obtiene un pabellón por ID.
func (r *WardRepo) GetByID(id string) (*entity.Ward, error) {
	w, err := scanWard(r.q.QueryRow(context.Background(),
		`SELECT `+wardColumns+` FROM wards WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ward: %w", err)
	}
	return w, nil
}

// List lista pabellones con paginación.
func (r *WardRepo) List(limit, offset int) ([]*entity.Ward, error) {
	query := `SELECT ` + wardColumns + ` FROM wards ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list wards: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ward
	for rows.Next() {
		var w entity.Ward
		if err := rows.Scan(&w.ID, &w.Name, &w.WardType, &w.TotalBeds, &w.AvailableBeds,
			&w.HeadNurseID, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ward: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// FindAvailableByType devuelve el pabellón activo del tipo dado con más camas
// disponibles. nil si ninguno tiene capacidad.
func (r *WardRepo) FindAvailableByType(wardType string) (*entity.Ward, error) {
	query := `
		SELECT ` + wardColumns + `
		FROM wards
		WHERE ward_type = $1 AND is_active = true AND available_beds > 0
		ORDER BY available_beds DESC
		LIMIT 1`
	w, err := scanWard(r.q.QueryRow(context.Background(), query, wardType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find available ward: %w", err)
	}
	return w, nil
}

// DecrementAvailableBeds resta 1 al contador con guarda available_beds > 0.
// Cero filas afectadas significa que el pabellón se quedó sin capacidad entre
// la lectura y este update: se traduce en ErrNoCapacity y la tx se revierte.
func (r *WardRepo) DecrementAvailableBeds(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE wards SET available_beds = available_beds - 1, updated_at = now()
		 WHERE id = $1 AND available_beds > 0`,
		id,
	)
	if err != nil {
		return fmt.Errorf("decrement available beds: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoCapacity
	}
	return nil
}

// IncrementAvailableBeds suma 1 al contador con techo en total_beds.
func (r *WardRepo) IncrementAvailableBeds(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE wards SET available_beds = available_beds + 1, updated_at = now()
		 WHERE id = $1 AND available_beds < total_beds`,
		id,
	)
	if err != nil {
		return fmt.Errorf("increment available beds: %w", err)
	}
	return nil
}
