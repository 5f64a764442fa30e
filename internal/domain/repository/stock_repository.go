package repository

import (
	"context"

	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
)

// StockRepository define el puerto de consulta/actualización de registros de stock por outlet.
type StockRepository interface {
	GetByID(ctx context.Context, id string) (*entity.StockRecord, error)
	// GetForUpdate lee el registro y, dentro de una transacción, lo bloquea hasta el commit.
	GetForUpdate(ctx context.Context, id string) (*entity.StockRecord, error)
	ListByOutlet(ctx context.Context, outletID string) ([]*entity.StockRecord, error)
	ListAll(ctx context.Context) ([]*entity.StockRecord, error)
	Update(ctx context.Context, record *entity.StockRecord) error
}

// OutletRepository define el puerto de lectura de outlets.
type OutletRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Outlet, error)
	List(ctx context.Context) ([]*entity.Outlet, error)
}
