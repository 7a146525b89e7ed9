package ports

import "context"

// HealthChecker is a dependency the readiness probe can ask about, such as
// the SQL database or the storage circuit breaker.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "database".
	Name() string
	// HealthCheck returns nil when the dependency can serve requests. It
	// must give up when ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them per probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps each checker name to its result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
