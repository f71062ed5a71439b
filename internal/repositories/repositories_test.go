package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hashicorp/go-hclog"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project_reports/internal/config"
	"project_reports/internal/database"
)

func strPtr(s string) *string { return &s }

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Connect(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "db.sqlite3"),
	}, hclog.NewNullLogger())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestProjectRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(setupSQLite(t))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	id, err := repo.Create(ctx, strPtr("P1"), strPtr("first"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	project, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, "P1", project.Name)
	require.NotNil(t, project.Description)
	assert.Equal(t, "first", *project.Description)

	require.NoError(t, repo.Update(ctx, id, strPtr("P1 renamed"), nil))
	project, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "P1 renamed", project.Name)
	assert.Nil(t, project.Description)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProjectRepository_CreateWithoutNameFails(t *testing.T) {
	repo := NewProjectRepository(setupSQLite(t))

	_, err := repo.Create(context.Background(), nil, strPtr("no name"))
	assert.Error(t, err)
}

func TestProjectRepository_MissingIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository(setupSQLite(t))

	assert.NoError(t, repo.Update(ctx, 404, strPtr("ghost"), nil))
	assert.NoError(t, repo.Delete(ctx, 404))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProjectRepository_DeleteCascadesToReports(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	projects := NewProjectRepository(db)
	reports := NewReportRepository(db)

	doomed, err := projects.Create(ctx, strPtr("doomed"), nil)
	require.NoError(t, err)
	kept, err := projects.Create(ctx, strPtr("kept"), nil)
	require.NoError(t, err)

	r1, err := reports.Create(ctx, doomed, strPtr("R1"), nil)
	require.NoError(t, err)
	r2, err := reports.Create(ctx, doomed, strPtr("R2"), strPtr("body"))
	require.NoError(t, err)
	r3, err := reports.Create(ctx, kept, strPtr("R3"), nil)
	require.NoError(t, err)

	require.NoError(t, projects.Delete(ctx, doomed))

	gone, err := projects.GetByID(ctx, doomed)
	require.NoError(t, err)
	assert.Nil(t, gone)

	for _, id := range []int64{r1, r2} {
		report, err := reports.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, report, "report %d should be deleted with its project", id)
	}

	survivor, err := reports.GetByID(ctx, r3)
	require.NoError(t, err)
	require.NotNil(t, survivor)
	assert.Equal(t, kept, survivor.ProjectID)
}

func TestReportRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	projectID, err := NewProjectRepository(db).Create(ctx, strPtr("P1"), nil)
	require.NoError(t, err)

	repo := NewReportRepository(db)

	id, err := repo.Create(ctx, projectID, strPtr("R1"), strPtr("draft"))
	require.NoError(t, err)

	report, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, projectID, report.ProjectID)
	assert.Equal(t, "R1", report.Title)
	assert.Equal(t, "draft", *report.Content)

	require.NoError(t, repo.Update(ctx, id, strPtr("R1 final"), strPtr("done")))
	report, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "R1 final", report.Title)
	assert.Equal(t, "done", *report.Content)
	assert.Equal(t, projectID, report.ProjectID)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, id))
	require.NoError(t, repo.Delete(ctx, id))

	report, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestReportRepository_CreateForMissingProject(t *testing.T) {
	repo := NewReportRepository(setupSQLite(t))

	_, err := repo.Create(context.Background(), 77, strPtr("orphan"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProjectNotFound), "got %v", err)
}

func TestProjectRepository_DeleteRollsBackOnFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := NewProjectRepository(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM reports WHERE project_id = \?`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM projects WHERE id = \?`).
		WithArgs(int64(7)).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err = repo.Delete(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete project")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_DeleteCommits(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := NewProjectRepository(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM reports WHERE project_id = \?`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM projects WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
}
