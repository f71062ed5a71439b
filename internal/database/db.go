package database

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"project_reports/internal/config"
)

// Connect opens the store handle for the configured driver and creates the
// schema if it is missing.
func Connect(cfg config.DatabaseConfig, logger hclog.Logger) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err = openSQLite(cfg, logger)
	case config.DriverPostgres:
		db, err = openPostgres(cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(context.Background(), db, logger); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func openSQLite(cfg config.DatabaseConfig, logger hclog.Logger) (*sqlx.DB, error) {
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve sqlite path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", abs)

	logger.Info("opening sqlite database", "path", abs)

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// one shared connection; sqlite serializes writers anyway
	db.SetMaxOpenConns(1)

	if err := ping(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

func openPostgres(cfg config.DatabaseConfig, logger hclog.Logger) (*sqlx.DB, error) {
	if cfg.AdminUser != "" {
		if err := EnsureDatabaseExists(cfg, logger); err != nil {
			return nil, err
		}
	}

	dsn := PostgresDSN(cfg)
	logger.Info("connecting to postgres", "host", cfg.Host, "port", cfg.Port, "database", cfg.Name)

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection (check your .env file): %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	if err := ping(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection pool established")
	return db, nil
}

// PostgresDSN builds a postgres:// URL from the config, unless an explicit
// DATABASE_URL was given.
func PostgresDSN(cfg config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}

	userInfo := url.UserPassword(cfg.User, cfg.Password)
	return fmt.Sprintf(
		"postgres://%s@%s:%d/%s?sslmode=disable",
		userInfo.String(),
		cfg.Host,
		cfg.Port,
		url.PathEscape(cfg.Name),
	)
}

// EnsureDatabaseExists connects to the maintenance database with the admin
// credentials and creates cfg.Name if it is missing.
func EnsureDatabaseExists(cfg config.DatabaseConfig, logger hclog.Logger) error {
	if cfg.Name == "" {
		return fmt.Errorf("DB_DATABASE environment variable is required")
	}

	userInfo := url.UserPassword(cfg.AdminUser, cfg.AdminPassword)
	dsn := fmt.Sprintf(
		"postgres://%s@%s:%d/postgres?sslmode=disable",
		userInfo.String(),
		cfg.Host,
		cfg.Port,
	)

	logger.Info("checking if database exists", "database", cfg.Name)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse connection string: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := pool.QueryRow(ctx, query, cfg.Name).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		logger.Debug("database already exists", "database", cfg.Name)
		return nil
	}

	// CREATE DATABASE cannot run inside a transaction
	createQuery := fmt.Sprintf("CREATE DATABASE %s", pgx.Identifier{cfg.Name}.Sanitize())
	if _, err := pool.Exec(ctx, createQuery); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	logger.Info("database created", "database", cfg.Name)
	return nil
}

func ping(db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}
