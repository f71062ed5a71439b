package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"project_reports/internal/middlewares"
	"project_reports/internal/repositories"
	"project_reports/internal/responses"
	"project_reports/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
	logger        hclog.Logger
}

func NewReportHandler(reportService *services.ReportService, logger hclog.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger.Named("report-handler"),
	}
}

// ListReports handles GET /reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.reportService.ListReports(c.Request.Context())
	if err != nil {
		h.logger.Error("list reports", "error", err, "request_id", middlewares.RequestID(c))
		responses.Fail(c, http.StatusInternalServerError, "Failed to retrieve reports")
		return
	}

	responses.JSON(c, http.StatusOK, reports)
}

// GetReport handles GET /reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.reportService.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("get report", "id", c.Param("id"), "error", err, "request_id", middlewares.RequestID(c))
		responses.Fail(c, http.StatusInternalServerError, "Failed to retrieve report")
		return
	}
	if report == nil {
		responses.Fail(c, http.StatusNotFound, "Report not found")
		return
	}

	responses.JSON(c, http.StatusOK, report)
}

// CreateReport handles POST /projects/:id/reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req services.ReportRequest
	if err := bindJSON(c, &req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	projectID := c.Param("id")
	id, err := h.reportService.CreateReport(c.Request.Context(), projectID, req)
	if err != nil {
		// any failure here is reported the same way; the log keeps the cause
		if errors.Is(err, repositories.ErrProjectNotFound) {
			h.logger.Warn("create report for missing project", "project_id", projectID, "request_id", middlewares.RequestID(c))
		} else {
			h.logger.Error("create report", "project_id", projectID, "error", err, "request_id", middlewares.RequestID(c))
		}
		responses.Fail(c, http.StatusInternalServerError, "Failed to create report. Check if project exists.")
		return
	}

	responses.Created(c, http.StatusCreated, id, "Report created")
}

// UpdateReport handles PUT /reports/:id
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	var req services.ReportRequest
	if err := bindJSON(c, &req); err != nil {
		responses.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.reportService.UpdateReport(c.Request.Context(), c.Param("id"), req); err != nil {
		h.logger.Error("update report", "id", c.Param("id"), "error", err, "request_id", middlewares.RequestID(c))
		responses.Fail(c, http.StatusInternalServerError, "Failed to update report")
		return
	}

	responses.Success(c, http.StatusOK, "Report updated")
}

// DeleteReport handles DELETE /reports/:id
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	if err := h.reportService.DeleteReport(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("delete report", "id", c.Param("id"), "error", err, "request_id", middlewares.RequestID(c))
		responses.Fail(c, http.StatusInternalServerError, "Failed to delete report")
		return
	}

	responses.Success(c, http.StatusOK, "Report deleted")
}
