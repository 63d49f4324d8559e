package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/evaluacion-docente/internal/api/http"
	"github.com/spec-kit/evaluacion-docente/internal/api/http/handlers"
	"github.com/spec-kit/evaluacion-docente/internal/auth"
	"github.com/spec-kit/evaluacion-docente/internal/config"
	"github.com/spec-kit/evaluacion-docente/internal/events"
	"github.com/spec-kit/evaluacion-docente/internal/observability"
	"github.com/spec-kit/evaluacion-docente/internal/persistence"
	"github.com/spec-kit/evaluacion-docente/internal/repository"
	"github.com/spec-kit/evaluacion-docente/internal/service"
	"github.com/spec-kit/evaluacion-docente/internal/worker"
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

	metrics := observability.NewMetrics("evaluacion_docente")

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	mirror, closeMirror, err := openMirror(cfg, pg, logger)
	if err != nil {
		logger.Fatal("failed to open mirror", zap.String("driver", cfg.Mirror.Driver), zap.Error(err))
	}
	defer closeMirror()

	directoryRepo := repository.NewDirectoryRepository()
	surveyRepo := repository.NewSurveyRepository()
	periodRepo := repository.NewPeriodRepository()

	snapshot, err := persistence.LoadSnapshot(cfg.Survey.DataFile)
	if err != nil {
		logger.Fatal("failed to load bootstrap data", zap.String("file", cfg.Survey.DataFile), zap.Error(err))
	}
	summary, err := service.Restore(ctx, service.Seed{
		Students:   snapshot.DomainStudents(),
		Professors: snapshot.DomainProfessors(),
		Admins:     snapshot.DomainAdmins(),
		Period:     snapshot.EvaluationPeriod,
		Responses:  snapshot.DomainResponses(),
	}, service.StateDependencies{
		DirectoryRepo: directoryRepo,
		SurveyRepo:    surveyRepo,
		PeriodRepo:    periodRepo,
		Mirror:        mirror,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("failed to restore state", zap.Error(err))
	}
	logger.Info("state restored",
		zap.Int("students", summary.Students),
		zap.Int("professors", summary.Professors),
		zap.Int("admins", summary.Admins),
		zap.Int("courses", summary.Courses),
		zap.Int("responses", summary.Responses),
		zap.Int("mirrored_responses", summary.MirroredResponses),
		zap.Int("skipped_responses", summary.SkippedResponses))

	location, _ := cfg.Survey.Location()
	dispatcher := events.NewInMemoryDispatcher()

	var publisher service.RedisPublisher
	if client := redis.Publisher(); client != nil {
		publisher = client
	}
	worker.StartEventSubscribers(
		service.NewMirrorService(dispatcher, mirror, logger, metrics),
		service.NewBroadcastService(dispatcher, publisher, logger, cfg.Broadcast),
	)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		DirectoryRepo: directoryRepo,
		SurveyRepo:    surveyRepo,
	})
	periodService := service.NewPeriodService(service.PeriodDependencies{
		PeriodRepo: periodRepo,
		Dispatcher: dispatcher,
		Location:   location,
	})
	courseService := service.NewCourseService(service.CourseDependencies{
		DirectoryRepo: directoryRepo,
		Dispatcher:    dispatcher,
	})
	submissionService := service.NewSubmissionService(service.SubmissionDependencies{
		DirectoryRepo: directoryRepo,
		SurveyRepo:    surveyRepo,
		Periods:       periodService,
		Dispatcher:    dispatcher,
	})
	reportService := service.NewReportService(service.ReportDependencies{
		DirectoryRepo: directoryRepo,
		SurveyRepo:    surveyRepo,
	})
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), directoryRepo)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Auth:           handlers.NewAuthHandler(authService),
		Survey:         handlers.NewSurveyHandler(periodService, submissionService),
		Reports:        handlers.NewReportsHandler(reportService),
		Admin:          handlers.NewAdminHandler(courseService),
		Metrics:        metrics,
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("fiber shutdown", zap.Error(err))
	}
}

// openMirror returns the durable mirror selected by MIRROR_DRIVER and its closer.
func openMirror(cfg *config.Config, pg *persistence.Postgres, logger *zap.Logger) (repository.Mirror, func(), error) {
	switch cfg.Mirror.Driver {
	case config.MirrorDriverBolt:
		db, err := persistence.OpenBolt(cfg.Mirror, logger)
		if err != nil {
			return nil, nil, err
		}
		mirror, err := repository.NewBoltMirror(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return mirror, closeBolt(db, logger), nil
	case config.MirrorDriverPostgres:
		if pg.PoolHandle() == nil {
			return nil, nil, persistence.ErrNotConfigured
		}
		return repository.NewPostgresMirror(pg.PoolHandle()), func() {}, nil
	default:
		logger.Warn("no durable mirror configured; responses live in memory only")
		return repository.NewNopMirror(), func() {}, nil
	}
}

func closeBolt(db *bbolt.DB, logger *zap.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Warn("closing bolt mirror", zap.Error(err))
		}
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
