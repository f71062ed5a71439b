package services

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"project_reports/internal/models"
	"project_reports/internal/utils"
)

// ProjectStore is the persistence the project service needs. It is
// implemented by repositories.ProjectRepository.
type ProjectStore interface {
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, name, description *string) (int64, error)
	Update(ctx context.Context, id int64, name, description *string) error
	Delete(ctx context.Context, id int64) error
}

type ProjectService struct {
	projectRepo ProjectStore
	logger      hclog.Logger
}

func NewProjectService(projectRepo ProjectStore, logger hclog.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		logger:      logger.Named("project-service"),
	}
}

// ProjectRequest is the body of POST /projects and PUT /projects/:id.
// Name stays a pointer so a missing name reaches the store as NULL.
type ProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projectRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns nil, nil when the project does not exist, including
// when projectID is not a valid id.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	id, ok := utils.ParseID(projectID)
	if !ok {
		return nil, nil
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, req ProjectRequest) (int64, error) {
	id, err := s.projectRepo.Create(ctx, req.Name, req.Description)
	if err != nil {
		return 0, fmt.Errorf("failed to save project to database: %w", err)
	}

	s.logger.Debug("project created", "id", id)
	return id, nil
}

// UpdateProject overwrites name and description. Unknown ids succeed
// without changing anything.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID string, req ProjectRequest) error {
	id, ok := utils.ParseID(projectID)
	if !ok {
		return nil
	}

	if err := s.projectRepo.Update(ctx, id, req.Name, req.Description); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// DeleteProject removes the project together with its reports. Unknown ids
// succeed without changing anything.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	id, ok := utils.ParseID(projectID)
	if !ok {
		return nil
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.logger.Debug("project deleted", "id", id)
	return nil
}
