package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ageful/solar-ops-api/internal/auth"
	"github.com/ageful/solar-ops-api/internal/config"
	"github.com/ageful/solar-ops-api/internal/database"
	"github.com/ageful/solar-ops-api/internal/http/handler"
	"github.com/ageful/solar-ops-api/internal/http/middleware"

	_ "github.com/ageful/solar-ops-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg                *config.Config
	logger             *zap.Logger
	db                 *gorm.DB
	authMiddleware     *auth.Middleware
	rateLimiter        *middleware.RateLimiter
	authHandler        *handler.AuthHandler
	customerHandler    *handler.CustomerHandler
	projectHandler     *handler.ProjectHandler
	maintenanceHandler *handler.MaintenanceHandler
	contractHandler    *handler.ContractHandler
	invoiceHandler     *handler.InvoiceHandler
	dashboardHandler   *handler.DashboardHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	authHandler *handler.AuthHandler,
	customerHandler *handler.CustomerHandler,
	projectHandler *handler.ProjectHandler,
	maintenanceHandler *handler.MaintenanceHandler,
	contractHandler *handler.ContractHandler,
	invoiceHandler *handler.InvoiceHandler,
	dashboardHandler *handler.DashboardHandler,
) *Router {
	return &Router{
		cfg:                cfg,
		logger:             logger,
		db:                 db,
		authMiddleware:     authMiddleware,
		rateLimiter:        rateLimiter,
		authHandler:        authHandler,
		customerHandler:    customerHandler,
		projectHandler:     projectHandler,
		maintenanceHandler: maintenanceHandler,
		contractHandler:    contractHandler,
		invoiceHandler:     invoiceHandler,
		dashboardHandler:   dashboardHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with pool stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(r.Context(), rt.db)
		if err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats":   stats,
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		if err := database.HealthCheck(r.Context(), rt.db); err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		status := "healthy"
		code := http.StatusOK
		if !allHealthy {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": status,
			"checks": checks,
		})
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (no auth required)
		r.Post("/auth/login", rt.authHandler.Login)
		r.Post("/auth/register", rt.authHandler.Register)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)

			// Auth
			r.Get("/auth/me", rt.authHandler.Me)

			// Customers
			r.Route("/customers", func(r chi.Router) {
				r.Get("/", rt.customerHandler.List)
				r.Post("/", rt.customerHandler.Create)
				r.Get("/{id}", rt.customerHandler.GetByID)
				r.Put("/{id}", rt.customerHandler.Update)
				r.Delete("/{id}", rt.customerHandler.Delete)
			})

			// Projects
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", rt.projectHandler.List)
				r.Post("/", rt.projectHandler.Create)
				r.Get("/{id}", rt.projectHandler.GetByID)
				r.Put("/{id}", rt.projectHandler.Update)
				r.Delete("/{id}", rt.projectHandler.Delete)
				r.Get("/{id}/specs", rt.projectHandler.GetSpecs)
				r.Get("/{id}/maintenance", rt.projectHandler.ListMaintenance)
			})

			// Maintenance logs
			r.Route("/maintenance", func(r chi.Router) {
				r.Get("/", rt.maintenanceHandler.List)
				r.Post("/", rt.maintenanceHandler.Create)
				r.Get("/{id}", rt.maintenanceHandler.GetByID)
				r.Put("/{id}", rt.maintenanceHandler.Update)
				r.Delete("/{id}", rt.maintenanceHandler.Delete)
				r.Post("/{id}/photo", rt.maintenanceHandler.UploadPhoto)
			})

			// Contracts and their invoices. Static segments are registered
			// before the {id} routes so chi matches them first.
			r.Route("/contracts", func(r chi.Router) {
				r.Get("/project/{projectId}", rt.contractHandler.ListByProject)
				r.Get("/invoices/all", rt.invoiceHandler.ListAll)
				r.Get("/invoices/{id}", rt.invoiceHandler.GetByID)
				r.Put("/invoices/{id}", rt.invoiceHandler.Update)
				r.Patch("/invoices/{id}/status", rt.invoiceHandler.UpdateStatus)
				r.Delete("/invoices/{id}", rt.invoiceHandler.Delete)

				r.Post("/", rt.contractHandler.Create)
				r.Get("/{id}", rt.contractHandler.GetByID)
				r.Put("/{id}", rt.contractHandler.Update)
				r.Delete("/{id}", rt.contractHandler.Delete)
				r.Get("/{id}/invoices", rt.invoiceHandler.ListByContract)
				r.Post("/{id}/invoices", rt.invoiceHandler.Create)
			})

			// Dashboard
			r.Get("/dashboard/billing-summary", rt.dashboardHandler.BillingSummary)
		})
	})

	return r
}
