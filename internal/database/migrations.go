package database

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/jmoiron/sqlx"
)

// RunMigrations creates the projects and reports tables if they are absent.
// The statement set is picked by the driver behind db.
func RunMigrations(ctx context.Context, db *sqlx.DB, logger hclog.Logger) error {
	migrations := sqliteMigrations
	if db.DriverName() == "pgx" {
		migrations = postgresMigrations
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}

	for i, migration := range migrations {
		logger.Debug("running migration", "step", i+1, "total", len(migrations))
		if _, err := tx.ExecContext(ctx, migration); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	logger.Info("schema ready", "driver", db.DriverName())
	return nil
}

var sqliteMigrations = []string{
	`
CREATE TABLE IF NOT EXISTS projects (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT
);
`,
	`
CREATE TABLE IF NOT EXISTS reports (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  project_id INTEGER NOT NULL,
  title TEXT NOT NULL,
  content TEXT,
  FOREIGN KEY (project_id) REFERENCES projects(id)
);
`,
	`CREATE INDEX IF NOT EXISTS idx_reports_project_id ON reports(project_id);`,
}

var postgresMigrations = []string{
	`
CREATE TABLE IF NOT EXISTS projects (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT
);
`,
	`
CREATE TABLE IF NOT EXISTS reports (
  id BIGSERIAL PRIMARY KEY,
  project_id BIGINT NOT NULL REFERENCES projects(id),
  title TEXT NOT NULL,
  content TEXT
);
`,
	`CREATE INDEX IF NOT EXISTS idx_reports_project_id ON reports(project_id);`,
}
