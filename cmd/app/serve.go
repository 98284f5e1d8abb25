package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/migrations"
	"dispatch/internal/pkg/logger"
	"dispatch/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func serveCommand(cfg cmd.Config, log *slog.Logger) *cobra.Command {
	var migrate bool

	command := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API and the dispatch jobs",
		RunE: func(command *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(command.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log, migrate)
		},
	}
	command.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")

	return command
}

func serve(ctx context.Context, cfg cmd.Config, log *slog.Logger, migrate bool) error {
	db, err := cmd.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn("could not close postgres connection", "error", err)
		}
	}()

	if migrate {
		if err := migrations.Up(ctx, sqlDB); err != nil {
			return fmt.Errorf("could not migrate: %w", err)
		}
	}

	root, err := cmd.NewCompositionRoot(cfg, db)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	jobMetrics := metrics.NewJobs(registry)

	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return err
	}
	router, err := httpin.NewRouter(root.CreateHTTPServer(), doc, httpin.RouterOptions{
		Logger:  log,
		Metrics: promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		Debug:   cfg.Environment != logger.ProductionEnvironment,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting webserver", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Runs in flight at shutdown finish their transaction.
	jobManager := root.CreateJobManager(jobMetrics, log)
	if err := jobManager.StartAll(context.WithoutCancel(ctx)); err != nil {
		_ = server.Close()
		return err
	}

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		jobManager.StopAll()
		return fmt.Errorf("webserver failed: %w", err)
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("could not stop webserver", "error", err)
	}
	jobManager.StopAll()

	return nil
}
