package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/restaurante-mis/internal/application/analytics"
	"github.com/jhoicas/restaurante-mis/internal/application/inventory"
	"github.com/jhoicas/restaurante-mis/internal/application/usecase"
	"github.com/jhoicas/restaurante-mis/internal/domain/repository"
	"github.com/jhoicas/restaurante-mis/internal/infrastructure/badgerstore"
	"github.com/jhoicas/restaurante-mis/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/restaurante-mis/internal/infrastructure/pdf"
	"github.com/jhoicas/restaurante-mis/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/restaurante-mis/internal/interfaces/http"
	"github.com/jhoicas/restaurante-mis/internal/interfaces/ws"
	"github.com/jhoicas/restaurante-mis/internal/scheduler"
	"github.com/jhoicas/restaurante-mis/pkg/config"
	"github.com/jhoicas/restaurante-mis/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("feedback_store", cfg.Feedback.Store).
		Str("stock_store", cfg.Stock.Store).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	db := &lazyPool{cfg: cfg.DB, log: log}
	defer db.Close()

	feedbackLog, closeLog := openFeedbackLog(ctx, cfg, db, log)
	defer closeLog()

	outletRepo := memory.NewOutletRepository(memory.SampleOutlets())
	stockRepo, txRunner := openStock(ctx, cfg, db, log)

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	hub := ws.NewHub(log)
	go hub.Run(hubCtx)

	digestUC := analytics.NewStockDigestUseCase(stockRepo, outletRepo)
	deps := httpRouter.RouterDeps{
		FeedbackUC:  usecase.NewFeedbackUseCase(feedbackLog, hub, cfg.Feedback.SubmitDelay),
		DocumentUC:  usecase.NewDocumentUseCase(outletRepo, infrapdf.NewMarotoRenderer()),
		CheckUC:     usecase.NewCheckUseCase(),
		PromotionUC: usecase.NewPromotionUseCase(),
		StockUC:     inventory.NewStockUseCase(stockRepo, outletRepo),
		InwardUC:    inventory.NewInwardUseCase(txRunner),
		DigestUC:    digestUC,
		Hub:         hub,
		JWTSecret:   cfg.JWT.Secret,
	}

	var sched *scheduler.Scheduler
	if cfg.Report.Cron != "off" {
		sched, err = scheduler.New(cfg.Report.Cron, digestUC, log)
		if err != nil {
			log.Fatal().Err(err).Msg("programar resumen de stock")
		}
		sched.Start()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Primero el hub: cierra los WebSocket abiertos para que fiber no espere por ellos.
	stopHub()
	<-hub.Done()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	stop()

	log.Info().Msg("aplicación detenida")
}

// lazyPool abre el pool de PostgreSQL la primera vez que un backend lo pide.
type lazyPool struct {
	cfg  config.DBConfig
	log  *logger.Logger
	pool *pgxpool.Pool
}

func (p *lazyPool) Get(ctx context.Context) *pgxpool.Pool {
	if p.pool == nil {
		pool, err := postgres.NewPool(ctx, p.cfg)
		if err != nil {
			p.log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		p.pool = pool
	}
	return p.pool
}

func (p *lazyPool) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// openFeedbackLog abre el backend configurado y devuelve su función de cierre.
func openFeedbackLog(ctx context.Context, cfg *config.Config, db *lazyPool, log *logger.Logger) (repository.FeedbackLog, func()) {
	switch cfg.Feedback.Store {
	case config.FeedbackStoreBadger:
		store, err := badgerstore.Open(cfg.Feedback.BadgerPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Feedback.BadgerPath).Msg("abrir badger")
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar badger")
			}
		}
	case config.FeedbackStorePostgres:
		repo := postgres.NewFeedbackRepository(db.Get(ctx))
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("crear tabla customer_feedback")
		}
		return repo, func() {}
	default:
		return memory.NewFeedbackLog(), func() {}
	}
}

// openStock devuelve el repositorio de stock y el runner transaccional del backend configurado.
func openStock(ctx context.Context, cfg *config.Config, db *lazyPool, log *logger.Logger) (repository.StockRepository, inventory.TxRunner) {
	if cfg.Stock.Store == config.StockStorePostgres {
		pool := db.Get(ctx)
		repo := postgres.NewStockRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("crear tabla stock_records")
		}
		if err := repo.Seed(ctx, memory.SampleStock()); err != nil {
			log.Fatal().Err(err).Msg("sembrar stock_records")
		}
		return repo, postgres.NewTxRunner(pool)
	}
	repo := memory.NewStockRepository(memory.SampleStock())
	return repo, memory.NewTxRunner(repo)
}
