package postgres

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/application/inventory"
	"github.com/jhoicas/restaurante-mis/internal/domain"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/repository"
	"github.com/jhoicas/restaurante-mis/pkg/config"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.vals[i]))
	}
	return nil
}

// fakeTx cumple Querier y pgx.Tx; solo implementa lo que usan los repos.
type fakeTx struct {
	pgx.Tx
	tag       string
	row       fakeRow
	sql       []string
	args      [][]any
	committed bool
	rolled    bool
}

func (f *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	return pgconn.NewCommandTag(f.tag), nil
}

func (f *fakeTx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("sin filas en el fake")
}

func (f *fakeTx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	return f.row
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if !f.committed {
		f.rolled = true
	}
	return nil
}

type fakeBeginner struct{ tx *fakeTx }

func (b fakeBeginner) Begin(context.Context) (pgx.Tx, error) { return b.tx, nil }

func stockRow(id string, current string) fakeRow {
	return fakeRow{vals: []any{
		id, "out-central", "Tomate chonto", entity.CategoryRawMaterial,
		decimal.RequireFromString(current), decimal.NewFromInt(20), decimal.NewFromInt(100),
		"kg", decimal.RequireFromString("1.2"), entity.StockStatusGood, time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC),
	}}
}

func TestStockRepo_UpdateEnviaDecimales(t *testing.T) {
	ctx := context.Background()
	q := &fakeTx{tag: "UPDATE 1"}
	repo := NewStockRepository(q)

	rec := &entity.StockRecord{ID: "stk-001", Current: decimal.RequireFromString("100"), UnitCost: decimal.RequireFromString("1.365")}
	require.NoError(t, repo.Update(ctx, rec))
	require.Len(t, q.args, 1)
	assert.Equal(t, "stk-001", q.args[0][0])
	assert.IsType(t, decimal.Decimal{}, q.args[0][1])
	assert.Equal(t, "1.365", q.args[0][4].(decimal.Decimal).String())

	q.tag = "UPDATE 0"
	err := repo.Update(ctx, &entity.StockRecord{ID: "stk-999"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockRepo_GetForUpdateBloqueaFila(t *testing.T) {
	ctx := context.Background()
	q := &fakeTx{row: stockRow("stk-001", "45")}
	repo := NewStockRepository(q)

	rec, err := repo.GetForUpdate(ctx, "stk-001")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Contains(t, q.sql[0], "FOR UPDATE")
	assert.Equal(t, "45", rec.Current.String())
	assert.Equal(t, "1.2", rec.UnitCost.String())

	q.row = fakeRow{err: pgx.ErrNoRows}
	missing, err := repo.GetByID(ctx, "stk-999")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	q.row = fakeRow{err: errors.New("conexión perdida")}
	_, err = repo.GetByID(ctx, "stk-001")
	assert.ErrorContains(t, err, "get stock")
}

func TestTxRunner_CommitYRollback(t *testing.T) {
	ctx := context.Background()

	ok := &fakeTx{tag: "UPDATE 1"}
	err := NewTxRunner(fakeBeginner{tx: ok}).Run(ctx, func(stock repository.StockRepository) error {
		return stock.Update(ctx, &entity.StockRecord{ID: "stk-001"})
	})
	require.NoError(t, err)
	assert.True(t, ok.committed)
	assert.False(t, ok.rolled)

	failed := &fakeTx{}
	boom := errors.New("falla")
	err = NewTxRunner(fakeBeginner{tx: failed}).Run(ctx, func(repository.StockRepository) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, failed.committed)
	assert.True(t, failed.rolled)
}

// Requiere una base real: TEST_DATABASE_URL=postgres://... go test ./internal/infrastructure/postgres/
func TestStockRepo_ReceiveContraPostgres(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	defer pool.Close()

	repo := NewStockRepository(pool)
	require.NoError(t, repo.EnsureSchema(ctx))
	_, err = pool.Exec(ctx, `DELETE FROM stock_records WHERE id LIKE 'it-%'`)
	require.NoError(t, err)
	require.NoError(t, repo.Seed(ctx, []entity.StockRecord{{
		ID: "it-001", OutletID: "out-central", ItemName: "Tomate chonto", Category: entity.CategoryRawMaterial,
		Current: decimal.NewFromInt(45), Min: decimal.NewFromInt(20), Max: decimal.NewFromInt(100),
		Unit: "kg", UnitCost: decimal.RequireFromString("1.2"), Status: entity.StockStatusGood, UpdatedAt: time.Now(),
	}}))

	uc := inventory.NewInwardUseCase(NewTxRunner(pool))
	_, err = uc.Receive(ctx, dto.InwardRequest{Lines: []dto.InwardLineRequest{
		{StockRecordID: "it-001", OrderedQuantity: dto.NewAmount(decimal.NewFromInt(55)),
			ReceivedQuantity: dto.NewAmount(decimal.NewFromInt(55)), UnitCost: dto.NewAmount(decimal.RequireFromString("1.5"))},
		{StockRecordID: "it-999", OrderedQuantity: dto.NewAmount(decimal.NewFromInt(1)),
			ReceivedQuantity: dto.NewAmount(decimal.NewFromInt(1))},
	}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	rec, err := repo.GetByID(ctx, "it-001")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(45).Equal(rec.Current), "rollback")

	_, err = uc.Receive(ctx, dto.InwardRequest{Lines: []dto.InwardLineRequest{
		{StockRecordID: "it-001", OrderedQuantity: dto.NewAmount(decimal.NewFromInt(55)),
			ReceivedQuantity: dto.NewAmount(decimal.NewFromInt(55)), UnitCost: dto.NewAmount(decimal.RequireFromString("1.5"))},
	}})
	require.NoError(t, err)
	rec, err = repo.GetByID(ctx, "it-001")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(rec.Current))
	assert.True(t, decimal.RequireFromString("1.365").Equal(rec.UnitCost))
}
