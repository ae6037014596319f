package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/api/http"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/api/http/handlers"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/config"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/events"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/generator"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/observability"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/persistence"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/repository"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/service"
	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	var (
		ticketRepo repository.TicketRepository
		healthPG   *persistence.Postgres
	)
	if pool := pg.PoolHandle(); pool != nil {
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pool, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		ticketRepo = repository.NewTicketRepository(pool)
		healthPG = pg
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	reportService := service.NewReportService(service.ReportDependencies{
		Source:  ticketRepo,
		Cache:   persistence.NewReportCache(redis),
		Params:  cfg.Analytics,
		Logger:  logger,
		Metrics: metrics,
	})
	ingestService := service.NewIngestService(service.IngestDependencies{
		Repo:       ticketRepo,
		Reports:    reportService,
		Dispatcher: dispatcher,
		Logger:     logger,
		Metrics:    metrics,
	})

	worker.StartRefreshWorker(dispatcher, reportService, logger)

	bootstrapDataset(ctx, cfg.Dataset, ticketRepo, reportService, ingestService, logger)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	routeCfg := httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, healthPG, redis),
		Reports:  handlers.NewReportsHandler(reportService),
		Datasets: handlers.NewDatasetsHandler(ingestService, reportService),
	}
	if ticketRepo != nil {
		routeCfg.SQL = handlers.NewSQLReportsHandler(ticketRepo)
	}
	httptransport.RegisterRoutes(app, routeCfg)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// bootstrapDataset loads an initial dataset so the reporting endpoints have
// something to answer from: a stored dataset when the database already holds
// one, otherwise the configured CSV or a generated collection.
func bootstrapDataset(
	ctx context.Context,
	cfg config.DatasetConfig,
	repo repository.TicketRepository,
	reports *service.ReportService,
	ingest *service.IngestService,
	logger *zap.Logger,
) {
	if repo != nil {
		count, err := repo.Count(ctx)
		if err != nil {
			logger.Warn("dataset bootstrap: count failed", zap.Error(err))
		} else if count > 0 {
			if err := reports.Refresh(ctx); err != nil {
				logger.Warn("dataset bootstrap: refresh failed", zap.Error(err))
			}
			return
		}
	}

	if cfg.CSVPath != "" {
		if _, _, err := ingest.ImportCSV(ctx, cfg.CSVPath); err != nil {
			logger.Warn("dataset bootstrap: csv import failed",
				zap.String("path", cfg.CSVPath), zap.Error(err))
		}
		return
	}

	if cfg.AutoGenerate {
		genCfg := generator.Defaults()
		genCfg.Count = cfg.GenerateSize
		genCfg.Seed = cfg.GenerateSeed
		if _, _, err := ingest.GenerateSynthetic(ctx, genCfg); err != nil {
			logger.Warn("dataset bootstrap: generation failed", zap.Error(err))
		}
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
