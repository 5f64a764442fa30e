package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/application/ports"
	"github.com/jhoicas/restaurante-mis/internal/domain"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/repository"
	"github.com/jhoicas/restaurante-mis/internal/domain/rules"
	"github.com/jhoicas/restaurante-mis/pkg/validator"
)

// DocumentUseCase calcula totales y valida el envío de compras, mermas, despachos y pedidos.
// No persiste: un documento aceptado se devuelve con ID y fecha para imprimirlo.
type DocumentUseCase struct {
	outlets  repository.OutletRepository
	renderer ports.DocumentRenderer
	now      func() time.Time
}

// NewDocumentUseCase construye el caso de uso. renderer puede ser nil si no se exporta PDF.
func NewDocumentUseCase(outlets repository.OutletRepository, renderer ports.DocumentRenderer) *DocumentUseCase {
	return &DocumentUseCase{outlets: outlets, renderer: renderer, now: time.Now}
}

// Quote recalcula totales sobre filas a medio llenar. Solo falla si kind no existe.
func (uc *DocumentUseCase) Quote(kind string, in dto.DocumentRequest) (*dto.DocumentResponse, error) {
	if !entity.IsValidDocumentKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	doc := toDocument(kind, in)
	return toDocumentResponse(doc), nil
}

// Submit valida cabecera y filas; si todo está completo devuelve el documento aceptado.
//   - cabecera incompleta → ValidationError (domain.ErrRequiredField)
//   - alguna fila incompleta o ninguna fila → domain.ErrIncompleteRows
func (uc *DocumentUseCase) Submit(ctx context.Context, kind string, in dto.DocumentRequest) (*dto.DocumentResponse, error) {
	doc, _, err := uc.accept(ctx, kind, in)
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// RenderPDF valida igual que Submit y genera el PDF del documento aceptado.
func (uc *DocumentUseCase) RenderPDF(ctx context.Context, kind string, in dto.DocumentRequest) ([]byte, string, error) {
	if uc.renderer == nil {
		return nil, "", fmt.Errorf("exportación PDF no configurada")
	}
	doc, outlet, err := uc.accept(ctx, kind, in)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.renderer.RenderDocument(ctx, doc, outlet)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("%s-%s.pdf", doc.Kind, doc.Date.Format("20060102-150405"))
	return pdf, filename, nil
}

func (uc *DocumentUseCase) accept(ctx context.Context, kind string, in dto.DocumentRequest) (*entity.Document, *entity.Outlet, error) {
	if !entity.IsValidDocumentKind(kind) {
		return nil, nil, domain.ErrInvalidInput
	}
	if err := NewValidationError(headerErrors(kind, in)); err != nil {
		return nil, nil, err
	}
	if rows := incompleteRows(kind, in.Lines); len(in.Lines) == 0 || len(rows) > 0 {
		return nil, nil, fmt.Errorf("%w: filas %v", domain.ErrIncompleteRows, rows)
	}

	outlet, err := uc.outlets.GetByID(ctx, in.OutletID)
	if err != nil {
		return nil, nil, err
	}
	if outlet == nil {
		return nil, nil, domain.ErrNotFound
	}
	if kind == entity.DocumentDispatch {
		from, err := uc.outlets.GetByID(ctx, in.FromOutletID)
		if err != nil {
			return nil, nil, err
		}
		if from == nil {
			return nil, nil, domain.ErrNotFound
		}
		// Los despachos salen siempre de la cocina central hacia otra sucursal.
		if !from.IsCentral || from.ID == outlet.ID {
			return nil, nil, domain.ErrInvalidInput
		}
	}

	doc := toDocument(kind, in)
	doc.ID = uuid.New().String()
	doc.Date = uc.now()
	for i := range doc.Lines {
		doc.Lines[i].ID = uuid.New().String()
	}
	return doc, outlet, nil
}

func headerErrors(kind string, in dto.DocumentRequest) []validator.FieldError {
	var errs []validator.FieldError
	if strings.TrimSpace(in.OutletID) == "" {
		errs = append(errs, required("outlet_id"))
	}
	switch kind {
	case entity.DocumentPurchase:
		if strings.TrimSpace(in.Supplier) == "" {
			errs = append(errs, required("supplier"))
		}
	case entity.DocumentDispatch:
		if strings.TrimSpace(in.FromOutletID) == "" {
			errs = append(errs, required("from_outlet_id"))
		}
	}
	return errs
}

// incompleteRows devuelve los índices de filas sin ítem, sin cantidad positiva
// o sin precio digitado. Las mermas además exigen motivo.
func incompleteRows(kind string, lines []dto.LineItemRequest) []int {
	var rows []int
	for i, l := range lines {
		ok := strings.TrimSpace(l.ItemName) != "" &&
			l.Quantity.IsPositive() &&
			!l.UnitPrice.IsBlank()
		if kind == entity.DocumentWastage && strings.TrimSpace(l.Reason) == "" {
			ok = false
		}
		if !ok {
			rows = append(rows, i)
		}
	}
	return rows
}

func toDocument(kind string, in dto.DocumentRequest) *entity.Document {
	lines := make([]entity.LineItem, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, entity.LineItem{
			ItemName:  strings.TrimSpace(l.ItemName),
			Unit:      l.Unit,
			Quantity:  l.Quantity.Decimal,
			UnitPrice: l.UnitPrice.Decimal,
			Reason:    l.Reason,
		})
	}
	lines, total := rules.ApplyTotals(lines)
	return &entity.Document{
		Kind:         kind,
		OutletID:     in.OutletID,
		FromOutletID: in.FromOutletID,
		Supplier:     in.Supplier,
		Reference:    in.Reference,
		Note:         in.Note,
		Lines:        lines,
		GrandTotal:   total,
	}
}

func toDocumentResponse(doc *entity.Document) *dto.DocumentResponse {
	lines := make([]dto.LineItemResponse, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		lines = append(lines, dto.LineItemResponse{
			ID:        l.ID,
			ItemName:  l.ItemName,
			Unit:      l.Unit,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.Total,
			Reason:    l.Reason,
		})
	}
	out := &dto.DocumentResponse{
		ID:           doc.ID,
		Kind:         doc.Kind,
		OutletID:     doc.OutletID,
		FromOutletID: doc.FromOutletID,
		Supplier:     doc.Supplier,
		Reference:    doc.Reference,
		Note:         doc.Note,
		Lines:        lines,
		GrandTotal:   doc.GrandTotal,
	}
	if !doc.Date.IsZero() {
		d := doc.Date
		out.Date = &d
	}
	return out
}
