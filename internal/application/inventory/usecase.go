// Package inventory contiene los casos de uso del tablero de stock y de la recepción
// de mercadería (inward) contra órdenes de compra.
package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/domain"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/repository"
	"github.com/jhoicas/restaurante-mis/internal/domain/rules"
)

// StockUseCase arma el tablero de inventario por outlet.
type StockUseCase struct {
	stockRepo  repository.StockRepository
	outletRepo repository.OutletRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository, outletRepo repository.OutletRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, outletRepo: outletRepo}
}

// Dashboard lista los registros de un outlet (o de todos si outletID es vacío).
// Cada fila lleva el badge guardado y, aparte, el porcentaje de nivel calculado.
func (uc *StockUseCase) Dashboard(ctx context.Context, outletID string) (*dto.StockDashboardResponse, error) {
	var (
		records []*entity.StockRecord
		err     error
	)
	if outletID == "" {
		records, err = uc.stockRepo.ListAll(ctx)
	} else {
		outlet, oerr := uc.outletRepo.GetByID(ctx, outletID)
		if oerr != nil {
			return nil, oerr
		}
		if outlet == nil {
			return nil, domain.ErrNotFound
		}
		records, err = uc.stockRepo.ListByOutlet(ctx, outletID)
	}
	if err != nil {
		return nil, fmt.Errorf("inventario: listar stock: %w", err)
	}

	out := &dto.StockDashboardResponse{
		OutletID: outletID,
		Items:    make([]dto.StockItemResponse, 0, len(records)),
		CountByStatus: map[string]int{
			entity.StockStatusGood:     0,
			entity.StockStatusLow:      0,
			entity.StockStatusCritical: 0,
		},
		StockValue: decimal.Zero,
	}
	for _, r := range records {
		out.Items = append(out.Items, ToStockItemResponse(r))
		out.CountByStatus[r.Status]++
		out.StockValue = out.StockValue.Add(rules.LineTotal(r.Current, r.UnitCost))
	}
	out.Total = len(out.Items)
	out.StockValue = out.StockValue.Round(2)
	return out, nil
}

// Classify aplica la regla de tres estados a valores sueltos.
func (uc *StockUseCase) Classify(in dto.ClassifyRequest) *dto.ClassifyResponse {
	return &dto.ClassifyResponse{
		Status:   rules.Classify(in.Current.Decimal, in.Min.Decimal, in.Max.Decimal),
		LevelPct: rules.StockLevelPercent(in.Current.Decimal, in.Min.Decimal, in.Max.Decimal),
	}
}

// ToStockItemResponse mapea un registro a la fila del tablero.
func ToStockItemResponse(r *entity.StockRecord) dto.StockItemResponse {
	return dto.StockItemResponse{
		ID:       r.ID,
		OutletID: r.OutletID,
		ItemName: r.ItemName,
		Category: r.Category,
		Current:  r.Current,
		Min:      r.Min,
		Max:      r.Max,
		Unit:     r.Unit,
		UnitCost: r.UnitCost,
		Status:   r.Status,
		LevelPct: rules.StockLevelPercent(r.Current, r.Min, r.Max),
	}
}
