package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"workmarket/cmd"
	httpin "workmarket/internal/adapters/in/http"
	"workmarket/internal/adapters/out/postgres"
	"workmarket/internal/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "workmarket: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(config.LogLevel, config.AppEnv)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(config.DSN())
	if err != nil {
		return err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := postgres.Migrate(ctx, gormDB, logger); err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(config, gormDB, logger)

	e, err := httpin.NewRouter(app.CreateServer(), logger)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server starting", zap.String("port", config.HTTPPort))
		if err := e.Start(":" + config.HTTPPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		jobManager.StopAll()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
