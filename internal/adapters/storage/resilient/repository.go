// Package resilient decorates a book repository with a circuit breaker,
// OpenTelemetry tracing and storage metrics.
//
// Construction:
//
//	repo := resilient.New(sqlstore.NewBookRepository(db), cfg.Database.CircuitBreaker,
//	    db.Driver(), metrics, logger)
//
// Every port call runs inside the breaker and a "storage.<Operation>" span.
// domain.ErrNotFound and domain.ErrValidation count as successful calls;
// context cancellation is ignored by the breaker. While the breaker is open,
// calls fail fast with an error wrapping domain.ErrUnavailable.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-book-catalog/internal/domain"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/book"
	"github.com/jsamuelsen11/go-book-catalog/internal/domain/page"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/config"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-book-catalog/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.BookRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
)

const breakerName = "storage-breaker"

// Metric result values.
const (
	resultSuccess     = "success"
	resultNotFound    = "not_found"
	resultCircuitOpen = "circuit_open"
	resultError       = "error"
)

// Repository wraps a ports.BookRepository.
type Repository struct {
	next    ports.BookRepository
	breaker *gobreaker.CircuitBreaker[struct{}]
	system  string
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New wraps next. system names the backing database in spans and metrics
// (e.g., "sqlite"). If metrics is nil, metric recording is skipped.
func New(
	next ports.BookRepository,
	cfg config.CircuitBreakerConfig,
	system string,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Repository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		IsExcluded:   isExcluded,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Repository{
		next:    next,
		breaker: cb,
		system:  system,
		metrics: metrics,
		logger:  logger,
	}
}

// isSuccessful treats outcomes that say nothing about storage health as
// successes.
func isSuccessful(err error) bool {
	return err == nil || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrValidation)
}

func isExcluded(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExistsByID implements ports.BookRepository.
func (r *Repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return call(ctx, r, "ExistsByID", func(ctx context.Context) (bool, error) {
		return r.next.ExistsByID(ctx, id)
	})
}

type findResult struct {
	book  book.Book
	found bool
}

// FindByID implements ports.BookRepository.
func (r *Repository) FindByID(ctx context.Context, id int64) (book.Book, bool, error) {
	res, err := call(ctx, r, "FindByID", func(ctx context.Context) (findResult, error) {
		b, found, err := r.next.FindByID(ctx, id)
		return findResult{book: b, found: found}, err
	})
	return res.book, res.found, err
}

// FindPage implements ports.BookRepository.
func (r *Repository) FindPage(ctx context.Context, req page.Request) (page.Result[book.Book], error) {
	return call(ctx, r, "FindPage", func(ctx context.Context) (page.Result[book.Book], error) {
		return r.next.FindPage(ctx, req)
	})
}

// Count implements ports.BookRepository.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	return call(ctx, r, "Count", r.next.Count)
}

// Save implements ports.BookRepository.
func (r *Repository) Save(ctx context.Context, b book.Book) (book.Book, error) {
	return call(ctx, r, "Save", func(ctx context.Context) (book.Book, error) {
		return r.next.Save(ctx, b)
	})
}

// SaveAll implements ports.BookRepository.
func (r *Repository) SaveAll(ctx context.Context, books []book.Book) ([]book.Book, error) {
	return call(ctx, r, "SaveAll", func(ctx context.Context) ([]book.Book, error) {
		return r.next.SaveAll(ctx, books)
	})
}

// DeleteByID implements ports.BookRepository.
func (r *Repository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	return call(ctx, r, "DeleteByID", func(ctx context.Context) (bool, error) {
		return r.next.DeleteByID(ctx, id)
	})
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return breakerName
}

// HealthCheck reports storage availability from the breaker state without
// touching the database.
//
// State mapping:
//   - "closed"    returns nil.
//   - "half-open" returns an error describing a degraded state.
//   - "open"      returns an error describing a failing state.
func (r *Repository) HealthCheck(_ context.Context) error {
	state := r.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", r.system)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", r.system)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", r.system, state)
	}
}

// call runs fn inside the breaker and a span, then records metrics.
func call[T any](ctx context.Context, r *Repository, op string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()

	ctx, span := r.startSpan(ctx, op)
	defer span.End()

	var out T
	_, err := r.breaker.Execute(func() (struct{}, error) {
		v, err := fn(ctx)
		out = v
		return struct{}{}, err
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		r.logger.WarnContext(ctx, "storage call rejected",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		err = fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}

	finishSpan(span, err)
	r.recordMetrics(ctx, op, start, err)

	return out, err
}

func (r *Repository) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("storage")

	return tracer.Start(ctx, "storage."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", r.system),
			attribute.String("db.operation", op),
		),
	)
}

// finishSpan marks the span failed for errors that indicate a storage
// problem. Not-found and validation outcomes leave the span unset.
func finishSpan(span trace.Span, err error) {
	if isSuccessful(err) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// recordMetrics records storage operation duration and count metrics.
// Safe to call with nil metrics.
func (r *Repository) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}

	duration := time.Since(start).Seconds()

	attrs := metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrDBSystem.String(r.system),
		telemetry.AttrResult.String(resultOf(err)),
	)

	r.metrics.StorageOperationDuration.Record(ctx, duration, attrs)
	r.metrics.StorageOperationTotal.Add(ctx, 1, attrs)
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, domain.ErrNotFound):
		return resultNotFound
	case errors.Is(err, domain.ErrUnavailable):
		return resultCircuitOpen
	default:
		return resultError
	}
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
