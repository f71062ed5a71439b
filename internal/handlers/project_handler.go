package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"project_reports/internal/middlewares"
	"project_reports/internal/responses"
	"project_reports/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
	logger         hclog.Logger
}

func NewProjectHandler(projectService *services.ProjectService, logger hclog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger.Named("project-handler"),
	}
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		h.logger.Error("list projects", "error", err, "request_id", middlewares.RequestID(c))
		responses.Fail(c, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}

	responses.JSON(c, http.StatusOK, projects)
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("get project", "id", c.Param("id"), "error", err, "request_id", middlewares.RequestID(c))
		responses.Fail(c, http.StatusInternalServerError, "Failed to retrieve project")
		return
	}
	if project == nil {
		responses.Fail(c, http.StatusNotFound, "Project not found")
		return
	}

	responses.JSON(c, http.StatusOK, project)
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req services.ProjectRequest
	if err := bindJSON(c, &req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("create project", "error", err, "request_id", middlewares.RequestID(c))
		responses.Fail(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	responses.Created(c, http.StatusCreated, id, "Project created")
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req services.ProjectRequest
	if err := bindJSON(c, &req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.projectService.UpdateProject(c.Request.Context(), c.Param("id"), req); err != nil {
		h.logger.Error("update project", "id", c.Param("id"), "error", err, "request_id", middlewares.RequestID(c))
		responses.Fail(c, http.StatusInternalServerError, "Failed to update project")
		return
	}

	responses.Success(c, http.StatusOK, "Project updated")
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("delete project", "id", c.Param("id"), "error", err, "request_id", middlewares.RequestID(c))
		responses.Fail(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	responses.Success(c, http.StatusOK, "Project deleted")
}
