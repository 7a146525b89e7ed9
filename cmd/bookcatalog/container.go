package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-book-catalog/internal/adapters/http"
	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/storage/resilient"
	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/go-book-catalog/internal/app"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/config"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/health"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-book-catalog/internal/ports"
)

// newInjector builds the DI container. Providers are lazy; nothing connects
// to the database until a consumer is invoked.
func newInjector(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	registerStorage(ctx, injector, cfg, logger)
	registerHTTP(injector, cfg, logger)

	return injector
}

func registerStorage(ctx context.Context, injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*sqlstore.DB, error) {
		db, err := sqlstore.Open(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return db, nil
	})

	do.Provide(injector, func(i do.Injector) (*resilient.Repository, error) {
		db, err := do.Invoke[*sqlstore.DB](i)
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return resilient.New(sqlstore.NewBookRepository(db), cfg.Database.CircuitBreaker,
			db.Driver(), metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BookRepository, error) {
		repo, err := do.Invoke[*resilient.Repository](i)
		if err != nil {
			return nil, err
		}
		return repo, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BookService, error) {
		repo, err := do.Invoke[ports.BookRepository](i)
		if err != nil {
			return nil, err
		}
		return app.NewBookService(repo, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		db, err := do.Invoke[*sqlstore.DB](i)
		if err != nil {
			return nil, err
		}
		breaker, err := do.Invoke[*resilient.Repository](i)
		if err != nil {
			return nil, err
		}

		registry := health.New()
		registry.Register(db)
		registry.Register(breaker)
		return registry, nil
	})
}

func registerHTTP(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*handlers.BookHandler, error) {
		svc, err := do.Invoke[ports.BookService](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewBookHandler(svc, cfg.Pagination, cfg.HTTP.MaxBodyBytes), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry, err := do.Invoke[ports.HealthRegistry](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		bookH, err := do.Invoke[*handlers.BookHandler](i)
		if err != nil {
			return nil, err
		}
		healthH, err := do.Invoke[*handlers.HealthHandler](i)
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(bookH, healthH, middlewareChain(cfg, logger, metrics)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// middlewareChain returns the global middleware, outermost first. Slots for
// middleware switched off in cfg are left nil.
func middlewareChain(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) []func(nethttp.Handler) nethttp.Handler {
	var rateLimit func(nethttp.Handler) nethttp.Handler
	if cfg.HTTP.RateLimit.Enabled {
		rateLimit = middleware.RateLimit(middleware.NewRateLimiter(cfg.HTTP.RateLimit))
	}
	return []func(nethttp.Handler) nethttp.Handler{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.CORS(cfg.HTTP.CORS),
		middleware.OpenTelemetry(metrics),
		middleware.Logging(logger),
		rateLimit,
		middleware.Auth(cfg.HTTP.Auth),
		middleware.Timeout(cfg.Server.RequestTimeout),
	}
}
