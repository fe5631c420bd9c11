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

var _ repository.LabOrderRepository = (*LabOrderRepo)(nil)

// LabOrderRepo implementación del puerto LabOrderRepository sobre PostgreSQL.
type LabOrderRepo struct {
	q Querier
}

// NewLabOrderRepository construye el adaptador de persistencia para órdenes de laboratorio.
func NewLabOrderRepository(q Querier) *LabOrderRepo {
	return &LabOrderRepo{q: q}
}

const labOrderColumns = `id, order_number, patient_id, visit_id, ordered_by, status, priority, notes, created_at, updated_at`

// Create persiste la orden y sus pruebas.
func (r *LabOrderRepo) Create(order *entity.LabOrder) error {
	query := `
		INSERT INTO lab_orders (` + labOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.PatientID, order.VisitID, order.OrderedBy,
		order.Status, order.Priority, order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lab order: %w", err)
	}
	testQuery := `
		INSERT INTO lab_order_tests (id, lab_order_id, test_name, test_code, result, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, t := range order.Tests {
		_, err := r.q.Exec(context.Background(), testQuery,
			t.ID, t.LabOrderID, t.TestName, t.TestCode, t.Result, t.Status, t.CreatedAt, t.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert lab order test: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la orden con sus pruebas.
func (r *LabOrderRepo) GetByID(id string) (*entity.LabOrder, error) {
	var o entity.LabOrder
	err := r.q.QueryRow(context.Background(),
		`SELECT `+labOrderColumns+` FROM lab_orders WHERE id = $1`, id).Scan(
		&o.ID, &o.OrderNumber, &o.PatientID, &o.VisitID, &o.OrderedBy,
		&o.Status, &o.Priority, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lab order: %w", err)
	}
	tests, err := r.loadTests(o.ID)
	if err != nil {
		return nil, err
	}
	o.Tests = tests
	return &o, nil
}

func (r *LabOrderRepo) loadTests(orderID string) ([]entity.LabOrderTest, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, lab_order_id, test_name, test_code, result, status, created_at, updated_at
		 FROM lab_order_tests WHERE lab_order_id = $1 ORDER BY test_name ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list lab order tests: %w", err)
	}
	defer rows.Close()
	var tests []entity.LabOrderTest
	for rows.Next() {
		var t entity.LabOrderTest
		if err := rows.Scan(&t.ID, &t.LabOrderID, &t.TestName, &t.TestCode, &t.Result,
			&t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lab order test: %w", err)
		}
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

// ListByPatient lista órdenes de un paciente (sin pruebas, sólo la cabecera).
func (r *LabOrderRepo) ListByPatient(patientID string, limit, offset int) ([]*entity.LabOrder, error) {
	query := `SELECT ` + labOrderColumns + ` FROM lab_orders WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, patientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lab orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.LabOrder
	for rows.Next() {
		var o entity.LabOrder
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.PatientID, &o.VisitID, &o.OrderedBy,
			&o.Status, &o.Priority, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lab order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// SetTestResult registra el resultado y marca la prueba resulted.
func (r *LabOrderRepo) SetTestResult(testID, result string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE lab_order_tests SET result = $2, status = 'resulted', updated_at = now() WHERE id = $1`,
		testID, result,
	)
	if err != nil {
		return fmt.Errorf("set lab test result: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
