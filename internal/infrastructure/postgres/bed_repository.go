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

var _ repository.BedRepository = (*BedRepo)(nil)

// BedRepo implementación del puerto BedRepository sobre PostgreSQL (usable con pool o tx).
type BedRepo struct {
	q Querier
}

// NewBedRepository construye el adaptador de persistencia para camas. Pasar pool o tx (Querier).
func NewBedRepository(q Querier) *BedRepo {
	return &BedRepo{q: q}
}

const bedColumns = `id, ward_id, bed_number, bed_type, status, current_patient_id, created_at, updated_at`

func scanBed(row pgx.Row) (*entity.Bed, error) {
	var b entity.Bed
	err := row.Scan(&b.ID, &b.WardID, &b.BedNumber, &b.BedType, &b.Status,
		&b.CurrentPatientID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBatch inserta las camas de un pabellón recién creado.
func (r *BedRepo) CreateBatch(beds []*entity.Bed) error {
	query := `
		INSERT INTO beds (` + bedColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, b := range beds {
		_, err := r.q.Exec(context.Background(), query,
			b.ID, b.WardID, b.BedNumber, b.BedType, b.Status,
			b.CurrentPatientID, b.CreatedAt, b.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert bed %s: %w", b.BedNumber, err)
		}
	}
	return nil
}

// GetByID obtiene una cama por ID.
func (r *BedRepo) GetByID(id string) (*entity.Bed, error) {
	b, err := scanBed(r.q.QueryRow(context.Background(),
		`SELECT `+bedColumns+` FROM beds WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bed: %w", err)
	}
	return b, nil
}

// GetInWard busca la cama restringida a un pabellón. nil si no pertenece.
func (r *BedRepo) GetInWard(bedID, wardID string) (*entity.Bed, error) {
	b, err := scanBed(r.q.QueryRow(context.Background(),
		`SELECT `+bedColumns+` FROM beds WHERE id = $1 AND ward_id = $2`, bedID, wardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bed in ward: %w", err)
	}
	return b, nil
}

// FirstAvailable devuelve la primera cama disponible del pabellón por
// bed_number ascendente. nil si ninguna está disponible.
func (r *BedRepo) FirstAvailable(wardID string) (*entity.Bed, error) {
	query := `
		SELECT ` + bedColumns + `
		FROM beds
		WHERE ward_id = $1 AND status = 'available'
		ORDER BY bed_number ASC
		LIMIT 1`
	b, err := scanBed(r.q.QueryRow(context.Background(), query, wardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("first available bed: %w", err)
	}
	return b, nil
}

// ListByWard lista las camas de un pabellón ordenadas por número.
func (r *BedRepo) ListByWard(wardID string) ([]*entity.Bed, error) {
	query := `SELECT ` + bedColumns + ` FROM beds WHERE ward_id = $1 ORDER BY bed_number ASC`
	rows, err := r.q.Query(context.Background(), query, wardID)
	if err != nil {
		return nil, fmt.Errorf("list beds: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bed
	for rows.Next() {
		var b entity.Bed
		if err := rows.Scan(&b.ID, &b.WardID, &b.BedNumber, &b.BedType, &b.Status,
			&b.CurrentPatientID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bed: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Occupy marca la cama occupied y liga al paciente, condicional a que siga
// disponible. Cero filas afectadas: otra aprobación la tomó primero.
func (r *BedRepo) Occupy(bedID, patientID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE beds SET status = 'occupied', current_patient_id = $2, updated_at = now()
		 WHERE id = $1 AND status = 'available'`,
		bedID, patientID,
	)
	if err != nil {
		return fmt.Errorf("occupy bed: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrBedUnavailable
	}
	return nil
}

// Release libera la cama ocupada (alta del paciente).
func (r *BedRepo) Release(bedID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE beds SET status = 'available', current_patient_id = NULL, updated_at = now()
		 WHERE id = $1 AND status = 'occupied'`,
		bedID,
	)
	if err != nil {
		return fmt.Errorf("release bed: %w", err)
	}
	return nil
}
