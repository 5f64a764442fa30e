package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/restaurante-mis/internal/domain"
	"github.com/jhoicas/restaurante-mis/internal/domain/entity"
	"github.com/jhoicas/restaurante-mis/internal/domain/repository"
)

var (
	_ repository.StockRepository  = (*StockRepo)(nil)
	_ repository.OutletRepository = (*OutletRepo)(nil)
)

// StockRepo guarda registros de stock en memoria. Devuelve copias para que los
// llamadores no muten el estado compartido.
type StockRepo struct {
	mu      sync.RWMutex
	records map[string]entity.StockRecord
	order   []string
}

// NewStockRepository construye el repositorio con los registros iniciales.
func NewStockRepository(seed []entity.StockRecord) *StockRepo {
	r := &StockRepo{records: make(map[string]entity.StockRecord, len(seed))}
	for _, rec := range seed {
		r.records[rec.ID] = rec
		r.order = append(r.order, rec.ID)
	}
	return r
}

func (r *StockRepo) GetByID(_ context.Context, id string) (*entity.StockRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// GetForUpdate equivale a GetByID; el bloqueo lo da TxRunner.
func (r *StockRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockRecord, error) {
	return r.GetByID(ctx, id)
}

func (r *StockRepo) ListByOutlet(_ context.Context, outletID string) ([]*entity.StockRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.StockRecord
	for _, id := range r.order {
		rec := r.records[id]
		if rec.OutletID == outletID {
			list = append(list, &rec)
		}
	}
	return list, nil
}

func (r *StockRepo) ListAll(_ context.Context) ([]*entity.StockRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.StockRecord, 0, len(r.order))
	for _, id := range r.order {
		rec := r.records[id]
		list = append(list, &rec)
	}
	return list, nil
}

// Update reemplaza un registro existente.
func (r *StockRepo) Update(_ context.Context, record *entity.StockRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return domain.ErrNotFound
	}
	r.records[record.ID] = *record
	return nil
}

func (r *StockRepo) snapshot() map[string]entity.StockRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap := make(map[string]entity.StockRecord, len(r.records))
	for id, rec := range r.records {
		snap[id] = rec
	}
	return snap
}

func (r *StockRepo) restore(snap map[string]entity.StockRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = snap
}

// TxRunner imita una transacción sobre StockRepo: serializa las corridas y,
// si fn falla, devuelve los registros al estado previo.
type TxRunner struct {
	mu   sync.Mutex
	repo *StockRepo
}

// NewTxRunner construye el runner sobre el repositorio en memoria.
func NewTxRunner(repo *StockRepo) *TxRunner {
	return &TxRunner{repo: repo}
}

// Run ejecuta fn con el repositorio; ante error restaura el snapshot.
func (t *TxRunner) Run(_ context.Context, fn func(stockRepo repository.StockRepository) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	snap := t.repo.snapshot()
	if err := fn(t.repo); err != nil {
		t.repo.restore(snap)
		return err
	}
	return nil
}

// OutletRepo lista outlets fijos.
type OutletRepo struct {
	outlets map[string]entity.Outlet
}

// NewOutletRepository construye el repositorio de outlets.
func NewOutletRepository(seed []entity.Outlet) *OutletRepo {
	m := make(map[string]entity.Outlet, len(seed))
	for _, o := range seed {
		m[o.ID] = o
	}
	return &OutletRepo{outlets: m}
}

func (r *OutletRepo) GetByID(_ context.Context, id string) (*entity.Outlet, error) {
	o, ok := r.outlets[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *OutletRepo) List(_ context.Context) ([]*entity.Outlet, error) {
	list := make([]*entity.Outlet, 0, len(r.outlets))
	for _, o := range r.outlets {
		o := o
		list = append(list, &o)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
