package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	_ "github.com/voll-fit/voll-api/api/swagger"
	"github.com/voll-fit/voll-api/internal/handler"
	"github.com/voll-fit/voll-api/internal/repository"
	"github.com/voll-fit/voll-api/internal/router"
	"github.com/voll-fit/voll-api/internal/service"
	"github.com/voll-fit/voll-api/pkg/cache"
	"github.com/voll-fit/voll-api/pkg/config"
	"github.com/voll-fit/voll-api/pkg/database"
	"github.com/voll-fit/voll-api/pkg/logger"
)

// @title VOLL Candidate API
// @version 1.0.0
// @description Studio management API: students, agenda and financial entries
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	studentRepo := repository.NewStudentRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	financialRepo := repository.NewFinancialRepository(db)

	metricsSvc := service.NewMetricsService()
	studentSvc := service.NewStudentService(studentRepo, nil, logr)
	scheduleSvc := service.NewScheduleService(scheduleRepo, nil, logr)
	financialSvc := service.NewFinancialService(financialRepo, nil, logr)
	exportSvc := service.NewExportService(financialRepo)

	handlers := router.Handlers{
		Students:  handler.NewStudentHandler(studentSvc),
		Schedules: handler.NewScheduleHandler(scheduleSvc),
		Financial: handler.NewFinancialHandler(financialSvc, exportSvc),
		Metrics:   handler.NewMetricsHandler(metricsSvc, db.DB),
	}

	if cfg.Summary.Enabled {
		summarySvc := service.NewSummaryService(service.SummaryServiceParams{
			Students:  studentRepo,
			Schedules: scheduleRepo,
			Financial: financialRepo,
			Cache:     newSummaryCache(cfg, logr),
			Metrics:   metricsSvc,
			Logger:    logr,
			CacheTTL:  cfg.Summary.CacheTTL,
		})
		handlers.Summary = handler.NewSummaryHandler(summarySvc)
	}

	r := router.New(cfg, logr, handlers, metricsSvc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// newSummaryCache connects to Redis. A connection failure is not fatal; the
// summary endpoint recomputes on every call instead.
func newSummaryCache(cfg *config.Config, logr *zap.Logger) *repository.CacheRepository {
	client, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, summary caching disabled", "error", err)
		return repository.NewCacheRepository(nil, logr)
	}
	return repository.NewCacheRepository(client, logr)
}
