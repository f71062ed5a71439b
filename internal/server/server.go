package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"github.com/jmoiron/sqlx"

	"project_reports/internal/config"
	"project_reports/internal/handlers"
	"project_reports/internal/middlewares"
	"project_reports/internal/repositories"
	"project_reports/internal/routes"
	"project_reports/internal/services"
)

// NewServer wires the store handle into repositories, services and handlers
// and returns a configured http.Server.
func NewServer(cfg *config.Config, db *sqlx.DB, logger hclog.Logger) *http.Server {
	router := NewRouter(cfg, db, logger)

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func NewRouter(cfg *config.Config, db *sqlx.DB, logger hclog.Logger) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	// Dependency injection
	projectRepo := repositories.NewProjectRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	projectService := services.NewProjectService(projectRepo, logger)
	reportService := services.NewReportService(reportRepo, logger)
	projectHandler := handlers.NewProjectHandler(projectService, logger)
	reportHandler := handlers.NewReportHandler(reportService, logger)
	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, db)

	router := gin.New()
	router.Use(
		middlewares.RequestIDMiddleware(),
		middlewares.Logger(logger),
		gin.Recovery(),
		cors.New(corsConfig(cfg.Server.CORSAllowedOrigins)),
	)

	routes.RegisterRoutes(router, projectHandler, reportHandler, healthHandler)

	return router
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middlewares.RequestIDHeader},
		ExposeHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}
