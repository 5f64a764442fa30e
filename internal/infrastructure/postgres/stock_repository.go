package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/restaurante-mis/internal/domain"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// stockSchema guarda cantidades y costo como NUMERIC; pgx-shopspring-decimal los mapea a decimal.Decimal.
const stockSchema = `
	CREATE TABLE IF NOT EXISTS stock_records (
		id          TEXT          PRIMARY KEY,
		outlet_id   TEXT          NOT NULL,
		item_name   TEXT          NOT NULL,
		category    TEXT          NOT NULL DEFAULT '',
		current_qty NUMERIC(14,3) NOT NULL DEFAULT 0,
		min_qty     NUMERIC(14,3) NOT NULL DEFAULT 0,
		max_qty     NUMERIC(14,3) NOT NULL DEFAULT 0,
		unit        TEXT          NOT NULL DEFAULT '',
		unit_cost   NUMERIC(14,4) NOT NULL DEFAULT 0,
		status      TEXT          NOT NULL,
		updated_at  TIMESTAMPTZ   NOT NULL DEFAULT now()
	)`

const stockOutletIndex = `CREATE INDEX IF NOT EXISTS idx_stock_records_outlet ON stock_records (outlet_id)`

const stockColumns = `id, outlet_id, item_name, category, current_qty, min_qty, max_qty, unit, unit_cost, status, updated_at`

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// EnsureSchema crea la tabla y su índice si no existen.
func (r *StockRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, stockSchema); err != nil {
		return fmt.Errorf("crear tabla stock_records: %w", err)
	}
	if _, err := r.q.Exec(ctx, stockOutletIndex); err != nil {
		return fmt.Errorf("crear índice stock_records: %w", err)
	}
	return nil
}

// Seed inserta los registros que aún no existen; los existentes no se tocan.
func (r *StockRepo) Seed(ctx context.Context, records []entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (` + stockColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING`
	for _, s := range records {
		_, err := r.q.Exec(ctx, query,
			s.ID, s.OutletID, s.ItemName, s.Category, s.Current, s.Min, s.Max, s.Unit, s.UnitCost, s.Status, s.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("seed stock %s: %w", s.ID, err)
		}
	}
	return nil
}

// GetByID obtiene un registro; nil si no existe.
func (r *StockRepo) GetByID(ctx context.Context, id string) (*entity.StockRecord, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_records WHERE id = $1`
	return r.getOne(ctx, query, id, "get stock")
}

// GetForUpdate obtiene el registro y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockRecord, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_records WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id, "get stock for update")
}

func (r *StockRepo) getOne(ctx context.Context, query, id, op string) (*entity.StockRecord, error) {
	s, err := scanStock(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func (r *StockRepo) ListByOutlet(ctx context.Context, outletID string) ([]*entity.StockRecord, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_records WHERE outlet_id = $1 ORDER BY id`
	return r.list(ctx, query, outletID)
}

func (r *StockRepo) ListAll(ctx context.Context) ([]*entity.StockRecord, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_records ORDER BY id`
	return r.list(ctx, query)
}

func (r *StockRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockRecord, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockRecord
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update escribe cantidad, costo y estado de un registro existente.
func (r *StockRepo) Update(ctx context.Context, s *entity.StockRecord) error {
	query := `
		UPDATE stock_records
		SET current_qty = $2, min_qty = $3, max_qty = $4, unit_cost = $5, status = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, s.ID, s.Current, s.Min, s.Max, s.UnitCost, s.Status, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update stock %s: %w", s.ID, domain.ErrNotFound)
	}
	return nil
}

func scanStock(row pgx.Row) (*entity.StockRecord, error) {
	var s entity.StockRecord
	err := row.Scan(
		&s.ID, &s.OutletID, &s.ItemName, &s.Category, &s.Current, &s.Min, &s.Max, &s.Unit, &s.UnitCost, &s.Status, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
