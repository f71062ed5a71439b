package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"project_reports/internal/models"
)

type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) GetAll(ctx context.Context) ([]models.Report, error) {
	query := `SELECT id, project_id, title, content FROM reports ORDER BY id`

	reports := []models.Report{}
	if err := r.db.SelectContext(ctx, &reports, query); err != nil {
		return nil, err
	}

	return reports, nil
}

// GetByID returns nil, nil when no report has the given id.
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	query := r.db.Rebind(`SELECT id, project_id, title, content FROM reports WHERE id = ?`)

	var report models.Report
	if err := r.db.GetContext(ctx, &report, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &report, nil
}

// Create inserts a report under projectID. If the project does not exist the
// foreign key check fails and ErrProjectNotFound is returned.
func (r *ReportRepository) Create(ctx context.Context, projectID int64, title, content *string) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO reports (project_id, title, content)
		VALUES (?, ?, ?)
		RETURNING id
	`)

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, projectID, title, content).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: %d", ErrProjectNotFound, projectID)
		}
		return 0, err
	}

	return id, nil
}

// Update overwrites title and content; project_id is never touched.
// Updating a missing id is a no-op.
func (r *ReportRepository) Update(ctx context.Context, id int64, title, content *string) error {
	query := r.db.Rebind(`
		UPDATE reports SET
			title = ?, content = ?
		WHERE id = ?
	`)

	_, err := r.db.ExecContext(ctx, query, title, content, id)
	return err
}

func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM reports WHERE id = ?`)
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
