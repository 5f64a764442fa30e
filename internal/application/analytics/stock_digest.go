// Package analytics contiene los reportes de gestión sobre el inventario de los outlets.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/repository"
	"github.com/jhoicas/restaurante-mis/internal/domain/rules"
)

// StockDigestUseCase genera el resumen de stock por outlet.
//
// Fuente de datos: StockRepository y OutletRepository (solo lectura).
// BelowMin usa la regla de clasificación; CountByStatus usa el badge guardado.
// BadgeMismatch lista los ítems donde ambos no coinciden.
type StockDigestUseCase struct {
	stockRepo  repository.StockRepository
	outletRepo repository.OutletRepository
	now        func() time.Time
}

// NewStockDigestUseCase construye el caso de uso.
func NewStockDigestUseCase(stockRepo repository.StockRepository, outletRepo repository.OutletRepository) *StockDigestUseCase {
	return &StockDigestUseCase{stockRepo: stockRepo, outletRepo: outletRepo, now: time.Now}
}

// Summary construye el resumen para todos los outlets, en el orden que devuelve el repositorio.
func (uc *StockDigestUseCase) Summary(ctx context.Context) (*dto.StockDigestResponse, error) {
	outlets, err := uc.outletRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("digest: outlets: %w", err)
	}
	records, err := uc.stockRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("digest: stock: %w", err)
	}

	byOutlet := make(map[string][]*entity.StockRecord, len(outlets))
	for _, r := range records {
		byOutlet[r.OutletID] = append(byOutlet[r.OutletID], r)
	}

	now := uc.now()
	out := &dto.StockDigestResponse{
		GeneratedAt: now.UTC(),
		DateLabel:   dayLabel(now),
		Outlets:     make([]dto.OutletDigest, 0, len(outlets)),
		TotalValue:  decimal.Zero,
	}
	for _, o := range outlets {
		d := dto.OutletDigest{
			OutletID:   o.ID,
			OutletName: o.Name,
			CountByStatus: map[string]int{
				entity.StockStatusGood:     0,
				entity.StockStatusLow:      0,
				entity.StockStatusCritical: 0,
			},
			BelowMin:      []string{},
			BadgeMismatch: []string{},
			StockValue:    decimal.Zero,
		}
		for _, r := range byOutlet[o.ID] {
			d.Items++
			d.CountByStatus[r.Status]++
			computed := rules.Classify(r.Current, r.Min, r.Max)
			if computed != entity.StockStatusGood {
				d.BelowMin = append(d.BelowMin, r.ItemName)
			}
			if computed != r.Status {
				d.BadgeMismatch = append(d.BadgeMismatch, r.ItemName)
			}
			d.StockValue = d.StockValue.Add(rules.LineTotal(r.Current, r.UnitCost))
		}
		d.StockValue = d.StockValue.Round(2)
		out.TotalValue = out.TotalValue.Add(d.StockValue)
		out.Outlets = append(out.Outlets, d)
	}
	return out, nil
}

// dayLabel devuelve una etiqueta legible del día, ej: "15 de Enero 2025".
func dayLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%d de %s %d", t.Day(), months[t.Month()-1], t.Year())
}
