package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/config"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/httpapi"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/loans"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/logging"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/schemes"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/storage"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/tools"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/tracing"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/validators"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	// run owns every deferred shutdown, so it must return before any exit
	os.Exit(exitCode(logger, run(cfg, logger)))
}

// exitCode logs how the server stopped and flushes the logger
func exitCode(logger *zap.Logger, err error) int {
	code := 0
	if err != nil {
		logger.Error("server stopped", zap.Error(err))
		code = 1
	} else {
		logger.Info("server exited")
	}
	_ = logger.Sync()
	return code
}

func run(cfg *config.Config, logger *zap.Logger) error {
	shutdownTracing, err := tracing.Init(context.Background(), tracing.Options{
		ServiceName: cfg.OTELServiceName,
		Endpoint:    cfg.OTELEndpoint,
		Insecure:    cfg.OTELInsecure,
		SampleRatio: cfg.OTELSampleRatio,
	}, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	catalog, err := schemes.Load(cfg.SchemesFile)
	if err != nil {
		return fmt.Errorf("load schemes: %w", err)
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	svc := loans.NewService(
		catalog,
		validators.ProofLimits(cfg),
		loans.SimulatedBackend{Delay: cfg.SubmissionDelay},
		store, store,
		logger,
	)
	registry := tools.NewRegistry(cfg, svc, tracing.Tracer)
	api := httpapi.NewServer(cfg, registry, logger)
	defer api.Close()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", server.Addr),
			zap.Int("schemes", len(catalog.All())),
			zap.Strings("tools", registry.Names()),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func openStore(cfg *config.Config, logger *zap.Logger) (storage.Store, error) {
	if cfg.RedisAddr == "" {
		logger.Info("using in-memory store")
		return storage.NewMemory(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	r, err := storage.NewRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	logger.Info("using redis store", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
	return r, nil
}
