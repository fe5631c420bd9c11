package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

// VisitRepo implementación del puerto VisitRepository sobre PostgreSQL.
type VisitRepo struct {
	q Querier
}

// NewVisitRepository construye el adaptador de persistencia para visitas.
func NewVisitRepository(q Querier) *VisitRepo {
	return &VisitRepo{q: q}
}

// Create persiste una nueva visita.
func (r *VisitRepo) Create(visit *entity.Visit) error {
	query := `
		INSERT INTO visits (id, patient_id, attending_doctor_id, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		visit.ID, visit.PatientID, visit.AttendingDoctorID, visit.Reason,
		visit.Status, visit.CreatedAt, visit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

// GetByID obtiene una visita por ID.
func (r *VisitRepo) GetByID(id string) (*entity.Visit, error) {
	query := `
		SELECT id, patient_id, attending_doctor_id, reason, status, created_at, updated_at
		FROM visits WHERE id = $1`
	var v entity.Visit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.PatientID, &v.AttendingDoctorID, &v.Reason, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visit: %w", err)
	}
	return &v, nil
}

// UpdateStatus cambia el estado de la visita.
func (r *VisitRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE visits SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update visit status: %w", err)
	}
	return nil
}

// ListByPatient lista visitas de un paciente con paginación.
func (r *VisitRepo) ListByPatient(patientID string, limit, offset int) ([]*entity.Visit, error) {
	query := `
		SELECT id, patient_id, attending_doctor_id, reason, status, created_at, updated_at
		FROM visits WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, patientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Visit
	for rows.Next() {
		var v entity.Visit
		if err := rows.Scan(&v.ID, &v.PatientID, &v.AttendingDoctorID, &v.Reason, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
