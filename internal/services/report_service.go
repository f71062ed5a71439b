package services

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"project_reports/internal/models"
	"project_reports/internal/repositories"
	"project_reports/internal/utils"
)

type ReportStore interface {
	GetAll(ctx context.Context) ([]models.Report, error)
	GetByID(ctx context.Context, id int64) (*models.Report, error)
	Create(ctx context.Context, projectID int64, title, content *string) (int64, error)
	Update(ctx context.Context, id int64, title, content *string) error
	Delete(ctx context.Context, id int64) error
}

type ReportService struct {
	reportRepo ReportStore
	logger     hclog.Logger
}

func NewReportService(reportRepo ReportStore, logger hclog.Logger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		logger:     logger.Named("report-service"),
	}
}

// ReportRequest is the body of POST /projects/:projectId/reports and
// PUT /reports/:id. There is no project_id field: a report never moves.
type ReportRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (s *ReportService) ListReports(ctx context.Context) ([]models.Report, error) {
	reports, err := s.reportRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

func (s *ReportService) GetReport(ctx context.Context, reportID string) (*models.Report, error) {
	id, ok := utils.ParseID(reportID)
	if !ok {
		return nil, nil
	}

	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// CreateReport stores a report under projectID. An id that cannot name a
// project fails the same way as a missing project.
func (s *ReportService) CreateReport(ctx context.Context, projectID string, req ReportRequest) (int64, error) {
	pid, ok := utils.ParseID(projectID)
	if !ok {
		return 0, fmt.Errorf("%w: %q", repositories.ErrProjectNotFound, projectID)
	}

	id, err := s.reportRepo.Create(ctx, pid, req.Title, req.Content)
	if err != nil {
		return 0, fmt.Errorf("failed to save report to database: %w", err)
	}

	s.logger.Debug("report created", "id", id, "project_id", pid)
	return id, nil
}

func (s *ReportService) UpdateReport(ctx context.Context, reportID string, req ReportRequest) error {
	id, ok := utils.ParseID(reportID)
	if !ok {
		return nil
	}

	if err := s.reportRepo.Update(ctx, id, req.Title, req.Content); err != nil {
		return fmt.Errorf("failed to update report: %w", err)
	}
	return nil
}

func (s *ReportService) DeleteReport(ctx context.Context, reportID string) error {
	id, ok := utils.ParseID(reportID)
	if !ok {
		return nil
	}

	if err := s.reportRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}
