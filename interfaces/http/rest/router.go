package rest

import (
	"net/http"
	"time"

	"gogarvis-backend/infrastructure/di"
	"gogarvis-backend/interfaces/http/rest/handlers"
	"gogarvis-backend/interfaces/http/rest/middleware"
	"gogarvis-backend/pkg/common"
	apperrors "gogarvis-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// apiVersion reported by the root endpoint
const apiVersion = "1.0.0"

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{
		container: container,
		logger:    container.Logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.container.Config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	errorHandler := apperrors.NewErrorHandler(rt.logger)

	catalogHandler := handlers.NewCatalogHandler(rt.container.Catalogs, errorHandler, rt.logger)
	contentHandler := handlers.NewContentHandler(rt.container.ContentService, errorHandler, rt.logger)
	chatHandler := handlers.NewChatHandler(rt.container.ChatService, errorHandler, rt.logger)
	statusHandler := handlers.NewStatusHandler(rt.container.StatusService, errorHandler, rt.logger)
	statsHandler := handlers.NewStatsHandler(rt.container.StatsService, rt.logger)
	auditHandler := handlers.NewAuditHandler(rt.container.AuditRepository, errorHandler, rt.logger)

	router.Route("/api", func(r chi.Router) {
		r.Get("/", rt.root)
		r.Get("/health", rt.healthCheck)

		r.Post("/status", statusHandler.CreateStatus)
		r.Get("/status", statusHandler.ListStatus)

		r.Route("/documents", func(r chi.Router) {
			r.Get("/", catalogHandler.ListDocuments)
			r.Get("/categories/list", catalogHandler.DocumentCategories)
			r.Get("/{filename}", contentHandler.GetDocumentContent)
		})

		r.Route("/glossary", func(r chi.Router) {
			r.Get("/", catalogHandler.ListGlossary)
			r.Get("/categories", catalogHandler.GlossaryCategories)
		})

		r.Route("/architecture", func(r chi.Router) {
			r.Get("/components", catalogHandler.ListComponents)
			r.Get("/components/{componentID}", catalogHandler.GetComponent)
		})

		r.Route("/pigpen", func(r chi.Router) {
			r.Get("/", catalogHandler.ListOperators)
			r.Get("/categories/list", catalogHandler.OperatorCategories)
			r.Get("/{operatorID}", catalogHandler.GetOperator)
		})

		r.Route("/brands", func(r chi.Router) {
			r.Get("/", catalogHandler.ListBrands)
			r.Get("/{brandID}", catalogHandler.GetBrand)
		})

		r.Route("/chat", func(r chi.Router) {
			r.With(middleware.Throttle(rt.container.ChatLimiter, rt.logger)).
				Post("/", chatHandler.SendMessage)
			r.Get("/history/{sessionID}", chatHandler.GetHistory)
			r.Delete("/session/{sessionID}", chatHandler.ClearSession)
		})

		r.Get("/dashboard/stats", statsHandler.GetDashboardStats)

		r.With(middleware.RequireAuth(rt.container.JWTValidator, rt.logger)).
			Get("/audit-log", auditHandler.ListAuditLog)
	})

	return router
}

// root handles GET /api/
func (rt *Router) root(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "GARVIS Documentation Portal API",
		"version": apiVersion,
	})
}

// healthCheck handles GET /api/health
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
