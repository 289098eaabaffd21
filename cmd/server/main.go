package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/deidexdd-hash/mysticbot/internal/matrix/handler"
	matrixmetrics "github.com/deidexdd-hash/mysticbot/internal/matrix/metrics"
	"github.com/deidexdd-hash/mysticbot/internal/matrix/service"
	"github.com/deidexdd-hash/mysticbot/internal/platform/config"
	"github.com/deidexdd-hash/mysticbot/internal/platform/httpserver"
	"github.com/deidexdd-hash/mysticbot/internal/platform/logger"
	"github.com/deidexdd-hash/mysticbot/internal/platform/middleware"
	"github.com/deidexdd-hash/mysticbot/pkg/platform/httputil"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := buildEngine(cfg.Engine)
	if err != nil {
		return err
	}
	tables, err := loadTables(cfg.TablesDir)
	if err != nil {
		return err
	}

	infra, err := buildInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer infra.Close()

	svc, err := service.New(engine, tables, infra.profiles,
		service.WithLogger(log),
		service.WithMetrics(matrixmetrics.New()),
		service.WithPublisher(infra.worker),
	)
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.RequestContext)
	router.Use(middleware.AccessLog(log))
	router.Get("/healthz", healthHandler(infra.checks))
	router.Handle("/metrics", promhttp.Handler())
	handler.New(svc, log).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	// cancelled by shutdown once in-flight requests are done
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting mysticbot",
			"addr", cfg.Addr,
			"profile_store", cfg.ProfileStore,
			"reduction", engine.Reduction().String(),
			"overflow", engine.Overflow().String(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		err := infra.worker.Run(workerCtx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		return shutdown(srv, stopWorker, log)
	})

	return g.Wait()
}

// shutdown stops accepting requests, waits for in-flight handlers, and only
// then stops the event worker.
func shutdown(srv *http.Server, stopWorker context.CancelFunc, log *slog.Logger) error {
	defer stopWorker()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

type healthCheck func(ctx context.Context) error

func healthHandler(checks map[string]healthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{}
		healthy := true
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status[name] = err.Error()
				healthy = false
				continue
			}
			status[name] = "ok"
		}

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, code, map[string]any{"healthy": healthy, "checks": status})
	}
}
