// Package sqlstore implements the persistence ports on relational databases.
// Queries are built with goqu in prepared mode and executed through sqlx, so
// the same repository code serves SQLite (modernc.org/sqlite) and PostgreSQL
// (lib/pq or pgx).
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	_ "github.com/jackc/pgx/v5/stdlib"                  // "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // "postgres" database/sql driver
	_ "modernc.org/sqlite" // "sqlite" database/sql driver

	"github.com/jsamuelsen11/go-book-catalog/internal/platform/config"
	"github.com/jsamuelsen11/go-book-catalog/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthChecker = (*DB)(nil)

const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// ErrUnknownDriver is returned by Open for a driver name it cannot serve.
var ErrUnknownDriver = errors.New("sqlstore: unknown driver")

// driverSpec maps a configured driver name to its database/sql driver and
// goqu dialect.
type driverSpec struct {
	sqlDriver string
	dialect   string
	schema    string
}

var drivers = map[string]driverSpec{
	"sqlite":   {sqlDriver: "sqlite", dialect: dialectSQLite, schema: sqliteSchema},
	"postgres": {sqlDriver: "postgres", dialect: dialectPostgres, schema: postgresSchema},
	"pgx":      {sqlDriver: "pgx", dialect: dialectPostgres, schema: postgresSchema},
}

const sqliteSchema = `CREATE TABLE IF NOT EXISTS books (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	title          TEXT    NOT NULL DEFAULT '',
	author         TEXT    NOT NULL DEFAULT '',
	price          REAL    NOT NULL DEFAULT 0,
	published_date TEXT,
	genre          TEXT    NOT NULL DEFAULT ''
)`

const postgresSchema = `CREATE TABLE IF NOT EXISTS books (
	id             BIGSERIAL PRIMARY KEY,
	title          TEXT           NOT NULL DEFAULT '',
	author         TEXT           NOT NULL DEFAULT '',
	price          NUMERIC(12, 2) NOT NULL DEFAULT 0,
	published_date DATE,
	genre          TEXT           NOT NULL DEFAULT ''
)`

// DB is an open connection pool together with the SQL dialect used to build
// statements for it. It reports its health as "database".
type DB struct {
	conn     *sqlx.DB
	dialect  goqu.DialectWrapper
	postgres bool
	name     string
	logger   *slog.Logger
}

// Open connects to the configured database, waiting for it to accept
// connections with exponential backoff, and creates the books table if it
// does not exist yet.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	spec, ok := drivers[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	conn, err := sqlx.Open(spec.sqlDriver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	if spec.dialect == dialectSQLite {
		// One connection serializes writers and keeps a shared in-memory
		// database alive for the lifetime of the pool.
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
	} else {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	db := &DB{
		conn:     conn,
		dialect:  goqu.Dialect(spec.dialect),
		postgres: spec.dialect == dialectPostgres,
		name:     cfg.Driver,
		logger:   logger,
	}

	if err := db.pingUntilReady(ctx, newBackoffPolicy(cfg.ConnectRetry)); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connecting to %s database: %w", cfg.Driver, err)
	}

	if _, err := conn.ExecContext(ctx, spec.schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("creating books table: %w", err)
	}

	logger.InfoContext(ctx, "database ready", slog.String("driver", cfg.Driver))
	return db, nil
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.name
}

// Close releases every pooled connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Name implements ports.HealthChecker.
func (db *DB) Name() string {
	return "database"
}

// HealthCheck implements ports.HealthChecker by pinging the database.
func (db *DB) HealthCheck(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging %s database: %w", db.name, err)
	}
	return nil
}
