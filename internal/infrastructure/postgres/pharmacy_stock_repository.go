package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Hospitalario-api/internal/application/pharmacy"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

var _ repository.PharmacyStockRepository = (*PharmacyStockRepo)(nil)

// PharmacyStockRepo implementación del puerto PharmacyStockRepository sobre PostgreSQL (usable con pool o tx).
type PharmacyStockRepo struct {
	q Querier
}

// NewPharmacyStockRepository construye el adaptador de persistencia para el stock de farmacia. Pasar pool o tx (Querier).
func NewPharmacyStockRepository(q Querier) *PharmacyStockRepo {
	return &PharmacyStockRepo{q: q}
}

const pharmacyStockColumns = `id, supply_name, category, current_stock, minimum_stock_level, unit, created_at, updated_at`

func scanPharmacyStock(row pgx.Row) (*entity.PharmacyStock, error) {
	var s entity.PharmacyStock
	err := row.Scan(&s.ID, &s.SupplyName, &s.Category, &s.CurrentStock,
		&s.MinimumStockLevel, &s.Unit, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste un nuevo insumo en el stock central. folded_name se guarda
// junto al nombre para que la búsqueda por nombre normalizado sea un lookup
// indexable y no un scan con unaccent.
func (r *PharmacyStockRepo) Create(stock *entity.PharmacyStock) error {
	query := `
		INSERT INTO pharmacy_stock (` + pharmacyStockColumns + `, folded_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.SupplyName, stock.Category, stock.CurrentStock,
		stock.MinimumStockLevel, stock.Unit, stock.CreatedAt, stock.UpdatedAt,
		pharmacy.FoldSupplyName(stock.SupplyName),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pharmacy stock: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo de farmacia por ID.
func (r *PharmacyStockRepo) GetByID(id string) (*entity.PharmacyStock, error) {
	s, err := scanPharmacyStock(r.q.QueryRow(context.Background(),
		`SELECT `+pharmacyStockColumns+` FROM pharmacy_stock WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pharmacy stock: %w", err)
	}
	return s, nil
}

// GetForUpdate bloquea la fila del insumo dentro de la transacción en curso.
// Garantiza que previous_stock leído aquí sea exactamente el que el decremento
// va a mover.
func (r *PharmacyStockRepo) GetForUpdate(id string) (*entity.PharmacyStock, error) {
	s, err := scanPharmacyStock(r.q.QueryRow(context.Background(),
		`SELECT `+pharmacyStockColumns+` FROM pharmacy_stock WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock pharmacy stock: %w", err)
	}
	return s, nil
}

// FindByFoldedName busca por nombre normalizado. nil si no hay coincidencia.
func (r *PharmacyStockRepo) FindByFoldedName(folded string) (*entity.PharmacyStock, error) {
	s, err := scanPharmacyStock(r.q.QueryRow(context.Background(),
		`SELECT `+pharmacyStockColumns+` FROM pharmacy_stock WHERE folded_name = $1 LIMIT 1`, folded))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find pharmacy stock by name: %w", err)
	}
	return s, nil
}

// List lista el stock central con paginación.
func (r *PharmacyStockRepo) List(limit, offset int) ([]*entity.PharmacyStock, error) {
	query := `SELECT ` + pharmacyStockColumns + ` FROM pharmacy_stock ORDER BY supply_name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pharmacy stock: %w", err)
	}
	defer rows.Close()
	return collectPharmacyStock(rows)
}

// ListLow lista los insumos en o bajo su nivel mínimo.
func (r *PharmacyStockRepo) ListLow() ([]*entity.PharmacyStock, error) {
	query := `
		SELECT ` + pharmacyStockColumns + `
		FROM pharmacy_stock
		WHERE current_stock <= minimum_stock_level
		ORDER BY supply_name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low pharmacy stock: %w", err)
	}
	defer rows.Close()
	return collectPharmacyStock(rows)
}

func collectPharmacyStock(rows pgx.Rows) ([]*entity.PharmacyStock, error) {
	var list []*entity.PharmacyStock
	for rows.Next() {
		var s entity.PharmacyStock
		if err := rows.Scan(&s.ID, &s.SupplyName, &s.Category, &s.CurrentStock,
			&s.MinimumStockLevel, &s.Unit, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pharmacy stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Decrement resta quantity con guarda current_stock >= quantity. Cero filas
// afectadas: el stock ya no alcanza y la transacción de traslado se revierte.
func (r *PharmacyStockRepo) Decrement(id string, quantity decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE pharmacy_stock
		 SET current_stock = current_stock - $2, updated_at = now()
		 WHERE id = $1 AND current_stock >= $2`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("decrement pharmacy stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
