// SPDX-License-Identifier: MIT

// Command staffd serves the employee API. It is the runnable counterpart of
// the project-layout and request-flow sections of the README: client requests
// enter through an endpoint, pass validation, reach the service layer and
// return as JSON responses.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/AhmedFarag1/go-clean-code/internal/api"
	"github.com/AhmedFarag1/go-clean-code/internal/config"
	"github.com/AhmedFarag1/go-clean-code/internal/health"
	"github.com/AhmedFarag1/go-clean-code/internal/log"
	"github.com/AhmedFarag1/go-clean-code/internal/staff"
	"github.com/AhmedFarag1/go-clean-code/internal/storage"
)

var (
	version   = "v0.3.0"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	if err := run(*configPath); err != nil {
		logger := log.WithComponent("staffd")
		logger.Error().Err(err).Msg("fatal")
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log.Configure(log.Config{
		Level:   cfg.LogLevel,
		Service: "staffd",
		Version: version,
	})
	logger := log.WithComponent("staffd")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := buildStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn().Err(err).Msg("close store")
		}
	}()

	healthMgr := health.NewManager(version)
	healthMgr.Register(health.NewStoreChecker("storage", store.Ping))

	svc := staff.NewService(store)
	server := api.New(api.Config{
		RateLimitEnabled:  cfg.RateLimit.Enabled,
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
	}, svc, healthMgr)

	httpServer := newHTTPServer(cfg, server.Router())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().
			Str(log.FieldEvent, "server.started").
			Str("listen", cfg.Listen).
			Str(log.FieldBackend, cfg.Storage.Backend).
			Msg("staffd listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Str(log.FieldEvent, "server.stopping").Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout.Std())
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	// Hot reload applies the log level only; storage and listener changes
	// require a restart.
	if configPath != "" {
		g.Go(func() error {
			err := config.Watch(ctx, configPath, func(next config.Config) {
				if err := log.SetLevel(next.LogLevel); err != nil {
					logger.Warn().Err(err).Str("log_level", next.LogLevel).Msg("invalid log level in reloaded config")
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info().Str(log.FieldEvent, "server.stopped").Msg("shutdown complete")
	return nil
}

// newHTTPServer builds the listener with the connection limits from cfg. The
// timeouts keep slow or stalled clients from holding connections open past
// the configured bounds.
func newHTTPServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Listen,
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout.Std(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout.Std(),
		WriteTimeout:      cfg.Server.WriteTimeout.Std(),
		IdleTimeout:       cfg.Server.IdleTimeout.Std(),
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
}

// buildStore opens the configured backend and stacks the cache and metrics
// decorators on top of it.
func buildStore(cfg config.Config) (storage.Store, error) {
	store, err := storage.Open(storage.Config{
		Backend: cfg.Storage.Backend,
		Path:    cfg.Storage.Path,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Redis.Enabled {
		cached, err := storage.NewCachedStore(store, storage.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL.Std(),
		}, log.WithComponent("cache"))
		if err != nil {
			_ = store.Close()
			return nil, err
		}
		store = cached
	}

	return storage.Instrument(store, cfg.Storage.Backend), nil
}
