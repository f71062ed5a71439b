package routes

import (
	"project_reports/internal/handlers"

	"github.com/gin-gonic/gin"
)

type ReportRoutes struct {
	handler *handlers.ReportHandler
}

func NewReportRoutes(handler *handlers.ReportHandler) *ReportRoutes {
	return &ReportRoutes{handler: handler}
}

func (r *ReportRoutes) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("", r.handler.ListReports)
		reports.GET("/:id", r.handler.GetReport)
		reports.PUT("/:id", r.handler.UpdateReport)
		reports.DELETE("/:id", r.handler.DeleteReport)
	}
}
