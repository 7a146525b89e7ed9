package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// minJWTSecretLen is the shortest HS256 secret accepted when auth is enabled.
const minJWTSecretLen = 32

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	dbDrivers  = []string{"sqlite", "postgres", "pgx"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects every violation so one failed start reports them all.
type problems []error

// require records the message when ok is false.
func (p *problems) require(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// oneOf records a violation when got is not in allowed.
func (p *problems) oneOf(key, got string, allowed []string) {
	p.require(slices.Contains(allowed, got), "%s must be one of: %s; got %q",
		key, strings.Join(allowed, ", "), got)
}

// Validate checks the loaded configuration and returns every violation
// joined into one error.
func (c *Config) Validate() error {
	var p problems

	p.require(c.Server.Port >= 1 && c.Server.Port <= 65535,
		"server.port must be between 1 and 65535, got %d", c.Server.Port)
	p.require(c.Server.ReadTimeout > 0, "server.read_timeout must be positive")
	p.require(c.Server.WriteTimeout > 0, "server.write_timeout must be positive")
	p.require(c.Server.RequestTimeout > 0, "server.request_timeout must be positive")

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	c.Database.check(&p)
	c.HTTP.check(&p)

	p.require(c.Pagination.DefaultSize >= 1,
		"pagination.default_size must be >= 1, got %d", c.Pagination.DefaultSize)
	p.require(c.Pagination.MaxSize >= c.Pagination.DefaultSize,
		"pagination.max_size must be >= default_size, got %d < %d", c.Pagination.MaxSize, c.Pagination.DefaultSize)

	if c.Telemetry.Enabled {
		p.oneOf("telemetry.exporter", c.Telemetry.Exporter, exporters)
		p.require(c.Telemetry.Exporter != "otlp" || c.Telemetry.Endpoint != "",
			"telemetry.endpoint must not be empty when exporter is otlp")
	}

	return errors.Join(p...)
}

func (d *DatabaseConfig) check(p *problems) {
	p.oneOf("database.driver", d.Driver, dbDrivers)
	p.require(d.DSN != "", "database.dsn must not be empty")
	p.require(d.MaxOpenConns >= 0, "database.max_open_conns must be >= 0, got %d", d.MaxOpenConns)

	r := d.ConnectRetry
	p.require(r.MaxAttempts >= 1, "database.connect_retry.max_attempts must be >= 1, got %d", r.MaxAttempts)
	p.require(r.Multiplier > 0, "database.connect_retry.multiplier must be positive, got %g", r.Multiplier)

	p.require(d.CircuitBreaker.MaxFailures >= 1,
		"database.circuit_breaker.max_failures must be >= 1, got %d", d.CircuitBreaker.MaxFailures)
}

func (h *HTTPConfig) check(p *problems) {
	p.require(h.MaxBodyBytes > 0, "http.max_body_bytes must be positive, got %d", h.MaxBodyBytes)

	if rl := h.RateLimit; rl.Enabled {
		p.require(rl.RequestsPerSecond > 0,
			"http.rate_limit.requests_per_second must be positive, got %g", rl.RequestsPerSecond)
		p.require(rl.Burst >= 1, "http.rate_limit.burst must be >= 1, got %d", rl.Burst)
	}

	p.require(!h.Auth.Enabled || len(h.Auth.JWTSecret) >= minJWTSecretLen,
		"http.auth.jwt_secret must be at least %d bytes when auth is enabled", minJWTSecretLen)
}
