package config

const (
	defaultServerPort = 8080

	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5

	defaultRetryMaxAttempts = 5
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultMaxBodyBytes = 1 << 20

	defaultRateLimitRPS   = 50.0
	defaultRateLimitBurst = 100

	defaultPageSize    = 10
	defaultMaxPageSize = 100
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "30s",

		"log.level":  "info",
		"log.format": "json",

		"database.driver":                          "sqlite",
		"database.dsn":                             "file:bookcatalog.db?_pragma=foreign_keys(1)",
		"database.max_open_conns":                  defaultMaxOpenConns,
		"database.max_idle_conns":                  defaultMaxIdleConns,
		"database.conn_max_lifetime":               "30m",
		"database.connect_retry.max_attempts":      defaultRetryMaxAttempts,
		"database.connect_retry.initial_interval":  "200ms",
		"database.connect_retry.max_interval":      "5s",
		"database.connect_retry.multiplier":        defaultRetryMultiplier,
		"database.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.circuit_breaker.timeout":         "30s",
		"database.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"http.max_body_bytes":                 defaultMaxBodyBytes,
		"http.cors.allowed_origins":           []string{"http://localhost:5173"},
		"http.cors.allowed_methods":           []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		"http.cors.allowed_headers":           []string{"*"},
		"http.cors.exposed_headers":           []string{"X-Total-Count", "X-Page", "X-Page-Size", "X-Request-ID"},
		"http.cors.allow_credentials":         true,
		"http.cors.max_age":                   "1h",
		"http.rate_limit.enabled":             false,
		"http.rate_limit.requests_per_second": defaultRateLimitRPS,
		"http.rate_limit.burst":               defaultRateLimitBurst,
		"http.rate_limit.idle_ttl":            "10m",
		"http.auth.enabled":                   false,
		"http.auth.jwt_secret":                "",
		"http.auth.issuer":                    "",

		"pagination.default_size": defaultPageSize,
		"pagination.max_size":     defaultMaxPageSize,

		"seed.enabled": false,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "bookcatalog",
	}
}
