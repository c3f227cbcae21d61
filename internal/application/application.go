package application

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"students_service/internal/config"
	service "students_service/internal/domain/service/student"
	"students_service/internal/infrastructure/persistence"
	"students_service/internal/server"
	"students_service/pkg/application/connectors"
	"students_service/pkg/application/modules"
	"students_service/pkg/logx"
	"students_service/pkg/middlewarex"
)

const storageDriverMemory = "memory"

func Run(ctx context.Context) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	// 2. Storage
	var studentRepo service.StudentRepository

	if cfg.Storage.Driver == storageDriverMemory {
		studentRepo = persistence.NewMemoryStudentRepository()
	} else {
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}

		db := pg.Client(ctx)
		defer pg.Close(ctx)

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("db.PingContext: %w", err)
		}

		studentRepo = persistence.NewStudentRepository(db)
	}

	// 3. Service + HTTP server
	studentService := service.NewService(studentRepo)
	srv := server.NewServer(server.NewStudentServer(studentService))

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.Server.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.Server.LogFieldMaxLen),
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{ //nolint:exhaustruct
		Addr:    cfg.Server.ListenAddress,
		Handler: router,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	// 4. Modules
	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Server.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Server.MetricsListenAddress,
	}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
