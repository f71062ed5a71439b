package routes

import (
	"project_reports/internal/handlers"

	"github.com/gin-gonic/gin"
)

type ProjectRoutes struct {
	handler       *handlers.ProjectHandler
	reportHandler *handlers.ReportHandler
}

func NewProjectRoutes(handler *handlers.ProjectHandler, reportHandler *handlers.ReportHandler) *ProjectRoutes {
	return &ProjectRoutes{handler: handler, reportHandler: reportHandler}
}

func (r *ProjectRoutes) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", r.handler.ListProjects)
		projects.POST("", r.handler.CreateProject)
		projects.GET("/:id", r.handler.GetProject)
		projects.PUT("/:id", r.handler.UpdateProject)
		projects.DELETE("/:id", r.handler.DeleteProject)

		// gin needs the same wildcard name at this position, so the
		// project id of a nested report is also :id
		projects.POST("/:id/reports", r.reportHandler.CreateReport)
	}
}
