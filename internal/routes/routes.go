package routes

import (
	"project_reports/internal/handlers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, projectHandler *handlers.ProjectHandler, reportHandler *handlers.ReportHandler, healthHandler *handlers.HealthHandler) {
	root := &router.RouterGroup

	projectRoutes := NewProjectRoutes(projectHandler, reportHandler)
	projectRoutes.RegisterRoutes(root)

	reportRoutes := NewReportRoutes(reportHandler)
	reportRoutes.RegisterRoutes(root)

	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/healthz", healthHandler.HealthCheck)
}
