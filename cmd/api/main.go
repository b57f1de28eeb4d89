package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/sentinel-backend/config"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/architecture/catalog"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/logging"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/repository"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/service"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/summarize"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		zap.L().Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flush, err := logging.Init(cfg.App.LogLevel, cfg.App.Environment)
	if err != nil {
		return err
	}
	defer flush()
	log := zap.L()
	for _, w := range cfg.Warnings {
		log.Warn("config", zap.String("warning", w))
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	log.Info("catalog loaded",
		zap.String("path", cfg.Catalog.Path),
		zap.Int("components", len(cat.Components)),
		zap.Int("flows", len(cat.Flows)),
	)

	reg := metrics.DefaultRegistry()

	store, err := openStore(ctx, cfg, reg)
	if err != nil {
		return err
	}
	defer store.Close()

	summarizer, err := summarize.New(ctx, summarize.Config{
		APIKey:    cfg.Summarizer.APIKey,
		Provider:  cfg.Summarizer.Provider,
		Model:     cfg.Summarizer.Model,
		BaseURL:   cfg.Summarizer.BaseURL,
		UseADC:    cfg.Summarizer.UseADC,
		MockDelay: cfg.Summarizer.MockDelay,
		RateLimit: cfg.Summarizer.RateLimit,
		Burst:     cfg.Summarizer.Burst,
		Timeout:   cfg.Summarizer.Timeout,
	}, reg)
	if err != nil {
		return err
	}
	log.Info("summarizer ready", zap.String("provider", summarizer.Name()))

	sessions := service.NewSessionService(store, cat, summarizer, reg)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:        cfg.App.ServiceName,
		Version:            cfg.App.Version,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Catalog:            cat,
		Store:              store,
		Sessions:           sessions,
		Summarizer:         summarizer,
		Metrics:            reg,
	})

	// event streams never go idle on their own; cancelling the base
	// context on shutdown ends them
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelBase)

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", zap.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	// let in-flight analyses land before the store closes
	done := make(chan struct{})
	go func() {
		sessions.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warn("analyses still running at shutdown")
	}
	return nil
}

// openStore picks Redis when an address is configured and process memory
// otherwise.
func openStore(ctx context.Context, cfg *config.Config, reg *metrics.Registry) (repository.Store, error) {
	if cfg.Redis.Addr != "" {
		client, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		zap.L().Info("session store", zap.String("kind", "redis"), zap.String("addr", cfg.Redis.Addr))
		return repository.NewRedisStore(client, cfg.Redis.SessionTTL), nil
	}

	mem := repository.NewMemoryStore(cfg.Redis.SessionTTL,
		repository.WithExpiryHook(func(n int) { reg.SessionsExpiredTotal.Add(float64(n)) }),
	)
	if err := mem.StartSweeper(); err != nil {
		return nil, err
	}
	zap.L().Info("session store", zap.String("kind", "memory"))
	return mem, nil
}
