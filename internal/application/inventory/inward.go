package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/application/usecase"
	"github.com/jhoicas/restaurante-mis/internal/domain"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/repository"
	"github.com/jhoicas/restaurante-mis/internal/domain/rules"
	"github.com/jhoicas/restaurante-mis/pkg/validator"
)

// TxRunner ejecuta fn dentro de una transacción con un repositorio de stock atado a ella.
// Si fn devuelve error no queda ningún cambio aplicado.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockRepository) error) error
}

// InwardUseCase reconcilia recepciones contra órdenes de compra y las aplica al stock.
type InwardUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewInwardUseCase construye el caso de uso.
func NewInwardUseCase(txRunner TxRunner) *InwardUseCase {
	return &InwardUseCase{txRunner: txRunner, now: time.Now}
}

// Reconcile calcula el estado de cada línea y el global:
// pending si todas están pendientes (o no hay líneas), complete si todas están completas,
// partial en cualquier otro caso.
func (uc *InwardUseCase) Reconcile(in dto.InwardRequest) *dto.InwardResponse {
	out := &dto.InwardResponse{
		PurchaseRef: in.PurchaseRef,
		Lines:       make([]dto.InwardLineResponse, 0, len(in.Lines)),
	}
	pending, complete := 0, 0
	for _, l := range in.Lines {
		ordered := rules.Sanitize(l.OrderedQuantity.Decimal)
		received := rules.Sanitize(l.ReceivedQuantity.Decimal)
		status := rules.InwardStatus(received, ordered)
		switch status {
		case entity.InwardPending:
			pending++
		case entity.InwardComplete:
			complete++
		}
		out.Lines = append(out.Lines, dto.InwardLineResponse{
			StockRecordID:    l.StockRecordID,
			ItemName:         l.ItemName,
			OrderedQuantity:  ordered,
			ReceivedQuantity: received,
			Status:           status,
		})
	}
	switch {
	case pending == len(out.Lines):
		out.Status = entity.InwardPending
	case complete == len(out.Lines):
		out.Status = entity.InwardComplete
	default:
		out.Status = entity.InwardPartial
	}
	return out
}

// Receive reconcilia y suma lo recibido a cada registro de stock, recalculando el costo promedio.
// Lectura, promedio y escritura corren en una sola transacción: si una línea apunta a un
// registro inexistente no se modifica ninguno. El badge Status de los registros no se toca.
func (uc *InwardUseCase) Receive(ctx context.Context, in dto.InwardRequest) (*dto.ReceiveResponse, error) {
	rec := uc.Reconcile(in)

	var fields []validator.FieldError
	for i, l := range in.Lines {
		if rec.Lines[i].ReceivedQuantity.IsPositive() && strings.TrimSpace(l.StockRecordID) == "" {
			fields = append(fields, validator.FieldError{Field: fmt.Sprintf("lines[%d].stock_record_id", i), Tag: "required"})
		}
	}
	if err := usecase.NewValidationError(fields); err != nil {
		return nil, err
	}

	out := &dto.ReceiveResponse{InwardResponse: *rec}
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository) error {
		touched := make(map[string]*entity.StockRecord)
		order := make([]string, 0, len(in.Lines))
		for i, l := range in.Lines {
			qty := rec.Lines[i].ReceivedQuantity
			if !qty.IsPositive() {
				continue
			}
			r, ok := touched[l.StockRecordID]
			if !ok {
				var err error
				r, err = stockRepo.GetForUpdate(ctx, l.StockRecordID)
				if err != nil {
					return err
				}
				if r == nil {
					return fmt.Errorf("%w: registro de stock %s", domain.ErrNotFound, l.StockRecordID)
				}
				touched[l.StockRecordID] = r
				order = append(order, l.StockRecordID)
			}
			cost := rules.Sanitize(l.UnitCost.Decimal)
			if l.UnitCost.IsBlank() {
				cost = r.UnitCost
			}
			r.UnitCost = rules.WeightedAverageCost(r.Current, r.UnitCost, qty, cost)
			r.Current = r.Current.Add(qty)
			r.UpdatedAt = uc.now()
		}

		updated := make([]dto.StockItemResponse, 0, len(order))
		for _, id := range order {
			r := touched[id]
			if err := stockRepo.Update(ctx, r); err != nil {
				return fmt.Errorf("inventario: actualizar %s: %w", id, err)
			}
			updated = append(updated, ToStockItemResponse(r))
		}
		out.Updated = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
