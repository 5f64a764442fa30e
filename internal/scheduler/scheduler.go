// Package scheduler ejecuta tareas periódicas del MIS.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/restaurante-mis/internal/application/analytics"
	"github.com/jhoicas/restaurante-mis/pkg/logger"
)

const digestTimeout = time.Minute

// Scheduler registra el resumen de stock en el log según una expresión cron de 5 campos.
type Scheduler struct {
	cron   *cron.Cron
	digest *analytics.StockDigestUseCase
	log    *logger.Logger
}

// New valida la expresión y programa el resumen. No arranca hasta Start.
func New(spec string, digest *analytics.StockDigestUseCase, log *logger.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:   cron.New(),
		digest: digest,
		log:    log.Named("scheduler"),
	}
	if _, err := s.cron.AddFunc(spec, s.logStockDigest); err != nil {
		return nil, fmt.Errorf("scheduler: expresión cron %q: %w", spec, err)
	}
	return s, nil
}

// Start arranca el cron en su propia goroutine.
func (s *Scheduler) Start() {
	s.log.Info().Msg("scheduler iniciado")
	s.cron.Start()
}

// Stop detiene el cron y espera a que termine la tarea en curso o a que ctx expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
	s.log.Info().Msg("scheduler detenido")
}

// RunOnce ejecuta el resumen inmediatamente.
func (s *Scheduler) RunOnce() {
	s.logStockDigest()
}

func (s *Scheduler) logStockDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
	defer cancel()

	report, err := s.digest.Summary(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("resumen de stock")
		return
	}
	for _, o := range report.Outlets {
		ev := s.log.Info()
		if len(o.BelowMin) > 0 {
			ev = s.log.Warn()
		}
		ev.Str("outlet_id", o.OutletID).
			Int("items", o.Items).
			Int("good", o.CountByStatus["good"]).
			Int("low", o.CountByStatus["low"]).
			Int("critical", o.CountByStatus["critical"]).
			Strs("below_min", o.BelowMin).
			Strs("badge_mismatch", o.BadgeMismatch).
			Str("stock_value", o.StockValue.StringFixed(2)).
			Msg("resumen de stock")
	}
	s.log.Info().Str("date", report.DateLabel).Str("total_value", report.TotalValue.StringFixed(2)).Msg("resumen de stock completo")
}
