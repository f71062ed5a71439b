package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"project_reports/internal/models"
)

type ProjectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	query := `SELECT id, name, description FROM projects ORDER BY id`

	projects := []models.Project{}
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, err
	}

	return projects, nil
}

// GetByID returns nil, nil when no project has the given id.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := r.db.Rebind(`SELECT id, name, description FROM projects WHERE id = ?`)

	var project models.Project
	if err := r.db.GetContext(ctx, &project, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

// Create inserts a project and returns its id. A nil name is passed through
// so the NOT NULL constraint rejects it.
func (r *ProjectRepository) Create(ctx context.Context, name, description *string) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO projects (name, description)
		VALUES (?, ?)
		RETURNING id
	`)

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, name, description).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// Update overwrites name and description. Updating a missing id is a no-op.
func (r *ProjectRepository) Update(ctx context.Context, id int64, name, description *string) error {
	query := r.db.Rebind(`
		UPDATE projects SET
			name = ?, description = ?
		WHERE id = ?
	`)

	_, err := r.db.ExecContext(ctx, query, name, description, id)
	return err
}

// Delete removes the project's reports and then the project in a single
// transaction. Deleting a missing id is a no-op.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM reports WHERE project_id = ?`), id); err != nil {
			return fmt.Errorf("delete project reports: %w", err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM projects WHERE id = ?`), id); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
}
