package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/jsamuelsen11/go-book-catalog/internal/platform/config"
)

// jitterFraction bounds the random spread applied to each wait (±25%).
const jitterFraction = 0.25

// backoffPolicy is a normalized config.RetryConfig.
type backoffPolicy struct {
	attempts int
	initial  time.Duration
	ceiling  time.Duration
	factor   float64
}

func newBackoffPolicy(cfg config.RetryConfig) backoffPolicy {
	return backoffPolicy{
		attempts: max(cfg.MaxAttempts, 1),
		initial:  cfg.InitialInterval,
		ceiling:  max(cfg.MaxInterval, cfg.InitialInterval),
		factor:   positiveOr(cfg.Multiplier, 1),
	}
}

func positiveOr(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

// wait returns the pause before retry n, counting the first retry as 1. The
// base grows by factor per retry up to ceiling and is then jittered.
func (p backoffPolicy) wait(n int) time.Duration {
	base := math.Min(float64(p.initial)*math.Pow(p.factor, float64(n-1)), float64(p.ceiling))
	spread := base * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(base+spread, 0))
}

// pingUntilReady pings the database until it answers, the policy runs out of
// attempts, or ctx ends. Each retry is logged at WARN.
func (db *DB) pingUntilReady(ctx context.Context, p backoffPolicy) error {
	var err error
	for n := range p.attempts {
		if n > 0 {
			if werr := db.pause(ctx, n, p, err); werr != nil {
				return errors.Join(werr, err)
			}
		}

		if err = db.conn.PingContext(ctx); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
	}
	return fmt.Errorf("database unreachable after %d attempts: %w", p.attempts, err)
}

func (db *DB) pause(ctx context.Context, n int, p backoffPolicy, cause error) error {
	d := p.wait(n)
	db.logger.WarnContext(ctx, "database not ready, retrying",
		slog.String("operation", "sqlstore.Open"),
		slog.String("driver", db.name),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", p.attempts),
		slog.Duration("backoff", d),
		slog.Any("error", cause),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
