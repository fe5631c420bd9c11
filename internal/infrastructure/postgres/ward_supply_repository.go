package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/internal/domain/repository"
)

var _ repository.WardSupplyRepository = (*WardSupplyRepo)(nil)

// WardSupplyRepo implementación del puerto WardSupplyRepository sobre PostgreSQL (usable con pool o tx).
type WardSupplyRepo struct {
	q Querier
}

// NewWardSupplyRepository construye el adaptador de persistencia para insumos de pabellón. Pasar pool o tx (Querier).
func NewWardSupplyRepository(q Querier) *WardSupplyRepo {
	return &WardSupplyRepo{q: q}
}

const wardSupplyColumns = `id, ward_id, supply_name, current_stock, minimum_stock_level, unit, updated_at`

// Create persiste un insumo de pabellón.
func (r *WardSupplyRepo) Create(supply *entity.WardSupply) error {
	query := `
		INSERT INTO ward_supplies (` + wardSupplyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		supply.ID, supply.WardID, supply.SupplyName, supply.CurrentStock,
		supply.MinimumStockLevel, supply.Unit, supply.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ward supply: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo de pabellón por ID.
func (r *WardSupplyRepo) GetByID(id string) (*entity.WardSupply, error) {
	var s entity.WardSupply
	err := r.q.QueryRow(context.Background(),
		`SELECT `+wardSupplyColumns+` FROM ward_supplies WHERE id = $1`, id).Scan(
		&s.ID, &s.WardID, &s.SupplyName, &s.CurrentStock, &s.MinimumStockLevel, &s.Unit, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ward supply: %w", err)
	}
	return &s, nil
}

// ListByWard lista los insumos de un pabellón.
func (r *WardSupplyRepo) ListByWard(wardID string) ([]*entity.WardSupply, error) {
	query := `SELECT ` + wardSupplyColumns + ` FROM ward_supplies WHERE ward_id = $1 ORDER BY supply_name ASC`
	rows, err := r.q.Query(context.Background(), query, wardID)
	if err != nil {
		return nil, fmt.Errorf("list ward supplies: %w", err)
	}
	defer rows.Close()
	var list []*entity.WardSupply
	for rows.Next() {
		var s entity.WardSupply
		if err := rows.Scan(&s.ID, &s.WardID, &s.SupplyName, &s.CurrentStock,
			&s.MinimumStockLevel, &s.Unit, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ward supply: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// AddStock incrementa el contador del pabellón. Corre en la misma transacción
// que el decremento de farmacia: la suma de ambos stocks se conserva.
func (r *WardSupplyRepo) AddStock(id string, quantity decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ward_supplies SET current_stock = current_stock + $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("add ward supply stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
