package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

var _ repository.AdmissionRepository = (*AdmissionRepo)(nil)

// AdmissionRepo implementación del puerto AdmissionRepository sobre PostgreSQL (usable con pool o tx).
type AdmissionRepo struct {
	q Querier
}

// NewAdmissionRepository construye el adaptador de persistencia para admisiones. Pasar pool o tx (Querier).
func NewAdmissionRepository(q Querier) *AdmissionRepo {
	return &AdmissionRepo{q: q}
}

const admissionColumns = `id, admission_number, patient_id, visit_id, ward_id, bed_id, attending_doctor_id, assigned_doctor_id, requested_by, approved_by, admission_status, admission_reason, diagnosis, treatment_plan, urgency, discharged_at, created_at, updated_at`

func scanAdmission(row pgx.Row) (*entity.Admission, error) {
	var a entity.Admission
	err := row.Scan(&a.ID, &a.AdmissionNumber, &a.PatientID, &a.VisitID, &a.WardID, &a.BedID,
		&a.AttendingDoctorID, &a.AssignedDoctorID, &a.RequestedBy, &a.ApprovedBy, &a.Status,
		&a.AdmissionReason, &a.Diagnosis, &a.TreatmentPlan, &a.Urgency, &a.DischargedAt,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste una nueva solicitud de admisión (status 'active', sin cama).
func (r *AdmissionRepo) Create(admission *entity.Admission) error {
	query := `
		INSERT INTO admissions (` + admissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		admission.ID, admission.AdmissionNumber, admission.PatientID, admission.VisitID,
		admission.WardID, admission.BedID, admission.AttendingDoctorID, admission.AssignedDoctorID,
		admission.RequestedBy, admission.ApprovedBy, admission.Status, admission.AdmissionReason,
		admission.Diagnosis, admission.TreatmentPlan, admission.Urgency, admission.DischargedAt,
		admission.CreatedAt, admission.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert admission: %w", err)
	}
	return nil
}

// GetByID obtiene una admisión por ID.
func (r *AdmissionRepo) GetByID(id string) (*entity.Admission, error) {
	a, err := scanAdmission(r.q.QueryRow(context.Background(),
		`SELECT `+admissionColumns+` FROM admissions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admission: %w", err)
	}
	return a, nil
}

// List lista admisiones, opcionalmente filtradas por estado.
func (r *AdmissionRepo) List(status string, limit, offset int) ([]*entity.Admission, error) {
	query := `SELECT ` + admissionColumns + ` FROM admissions`
	args := []any{limit, offset}
	if status != "" {
		query += ` WHERE admission_status = $3`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list admissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Admission
	for rows.Next() {
		var a entity.Admission
		if err := rows.Scan(&a.ID, &a.AdmissionNumber, &a.PatientID, &a.VisitID, &a.WardID, &a.BedID,
			&a.AttendingDoctorID, &a.AssignedDoctorID, &a.RequestedBy, &a.ApprovedBy, &a.Status,
			&a.AdmissionReason, &a.Diagnosis, &a.TreatmentPlan, &a.Urgency, &a.DischargedAt,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan admission: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// MarkApproved aprueba la admisión condicional a que siga 'active'. Cero filas
// afectadas: ya fue aprobada o dada de alta por otro proceso.
func (r *AdmissionRepo) MarkApproved(id, bedID, approvedBy string, assignedDoctorID *string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE admissions
		 SET admission_status = 'approved', bed_id = $2, approved_by = $3,
		     assigned_doctor_id = COALESCE($4, assigned_doctor_id), updated_at = now()
		 WHERE id = $1 AND admission_status = 'active'`,
		id, bedID, approvedBy, assignedDoctorID,
	)
	if err != nil {
		return fmt.Errorf("approve admission: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAlreadyProcessed
	}
	return nil
}

// MarkDischarged da de alta la admisión condicional a que esté 'approved'.
func (r *AdmissionRepo) MarkDischarged(id string, at time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE admissions
		 SET admission_status = 'discharged', discharged_at = $2, updated_at = now()
		 WHERE id = $1 AND admission_status = 'approved'`,
		id, at,
	)
	if err != nil {
		return fmt.Errorf("discharge admission: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAlreadyProcessed
	}
	return nil
}
