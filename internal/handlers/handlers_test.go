package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"project_reports/internal/models"
	"project_reports/internal/services"
)

var errStore = errors.New("database is locked")

type failingProjectStore struct{}

func (failingProjectStore) GetAll(context.Context) ([]models.Project, error) { return nil, errStore }
func (failingProjectStore) GetByID(context.Context, int64) (*models.Project, error) {
	return nil, errStore
}
func (failingProjectStore) Create(context.Context, *string, *string) (int64, error) {
	return 0, errStore
}
func (failingProjectStore) Update(context.Context, int64, *string, *string) error { return errStore }
func (failingProjectStore) Delete(context.Context, int64) error                   { return errStore }

type failingReportStore struct{}

func (failingReportStore) GetAll(context.Context) ([]models.Report, error) { return nil, errStore }
func (failingReportStore) GetByID(context.Context, int64) (*models.Report, error) {
	return nil, errStore
}
func (failingReportStore) Create(context.Context, int64, *string, *string) (int64, error) {
	return 0, errStore
}
func (failingReportStore) Update(context.Context, int64, *string, *string) error { return errStore }
func (failingReportStore) Delete(context.Context, int64) error                   { return errStore }

func newFailingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := hclog.NewNullLogger()

	projects := NewProjectHandler(services.NewProjectService(failingProjectStore{}, logger), logger)
	reports := NewReportHandler(services.NewReportService(failingReportStore{}, logger), logger)

	router := gin.New()
	router.GET("/projects", projects.ListProjects)
	router.GET("/projects/:id", projects.GetProject)
	router.POST("/projects", projects.CreateProject)
	router.PUT("/projects/:id", projects.UpdateProject)
	router.DELETE("/projects/:id", projects.DeleteProject)
	router.POST("/projects/:id/reports", reports.CreateReport)
	router.GET("/reports", reports.ListReports)
	router.GET("/reports/:id", reports.GetReport)
	router.PUT("/reports/:id", reports.UpdateReport)
	router.DELETE("/reports/:id", reports.DeleteReport)
	return router
}

func TestHandlersReportStoreFailures(t *testing.T) {
	router := newFailingRouter()

	tests := []struct {
		method, path, body string
		wantBody           string
	}{
		{http.MethodGet, "/projects", "", `{"error":"Failed to retrieve projects"}`},
		{http.MethodGet, "/projects/1", "", `{"error":"Failed to retrieve project"}`},
		{http.MethodPost, "/projects", `{"name":"P1"}`, `{"error":"Failed to create project"}`},
		{http.MethodPut, "/projects/1", `{"name":"P1"}`, `{"error":"Failed to update project"}`},
		{http.MethodDelete, "/projects/1", "", `{"error":"Failed to delete project"}`},
		{http.MethodPost, "/projects/1/reports", `{"title":"R1"}`, `{"error":"Failed to create report. Check if project exists."}`},
		{http.MethodGet, "/reports", "", `{"error":"Failed to retrieve reports"}`},
		{http.MethodGet, "/reports/1", "", `{"error":"Failed to retrieve report"}`},
		{http.MethodPut, "/reports/1", `{"title":"R1"}`, `{"error":"Failed to update report"}`},
		{http.MethodDelete, "/reports/1", "", `{"error":"Failed to delete report"}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.NotContains(t, rr.Body.String(), errStore.Error())
		})
	}
}

func TestHandlersRejectMalformedBodies(t *testing.T) {
	router := newFailingRouter()

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/projects"},
		{http.MethodPut, "/projects/1"},
		{http.MethodPost, "/projects/1/reports"},
		{http.MethodPut, "/reports/1"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(`not json`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "%s %s", tc.method, tc.path)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, rr.Body.String())
	}
}
