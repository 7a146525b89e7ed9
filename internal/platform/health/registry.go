// Package health tracks the dependencies the readiness probe reports on.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/go-book-catalog/internal/platform/fanout"
	"github.com/jsamuelsen11/go-book-catalog/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// maxConcurrentChecks bounds how many checkers are probed at once.
const maxConcurrentChecks = 8

// Registry holds one checker per name. Registering a second checker under a
// name replaces the first, keeping its original position.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]ports.HealthChecker
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{byName: make(map[string]ports.HealthChecker)}
}

// Register adds checker under checker.Name().
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; !ok {
		r.order = append(r.order, name)
	}
	r.byName[name] = checker
}

// CheckAll probes every checker concurrently under ctx. A nil entry in the
// result means the dependency is healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	names, checkers := r.snapshot()

	outcomes := fanout.Run(ctx, maxConcurrentChecks, checkers,
		func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
			return struct{}{}, c.HealthCheck(ctx)
		})

	results := make(map[string]error, len(names))
	for i, name := range names {
		results[name] = outcomes[i].Err
	}
	return results
}

func (r *Registry) snapshot() ([]string, []ports.HealthChecker) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	checkers := make([]ports.HealthChecker, len(names))
	for i, name := range names {
		checkers[i] = r.byName[name]
	}
	return names, checkers
}
