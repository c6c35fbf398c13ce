package rest

import (
	"net/http"

	querybus "wordgraph/application/queries/bus"
	"wordgraph/interfaces/http/rest/handlers"
	"wordgraph/interfaces/http/rest/middleware"
	apperrors "wordgraph/pkg/errors"
	"wordgraph/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Options carries the router settings taken from configuration
type Options struct {
	AllowedOrigins    []string
	MaxExpansionDepth int
	Debug             bool
}

// Router creates and configures the HTTP router
type Router struct {
	queryBus  *querybus.QueryBus
	collector *observability.Collector
	tracer    *observability.Tracer
	logger    *zap.Logger
	opts      Options
}

// NewRouter creates a new router instance
func NewRouter(
	queryBus *querybus.QueryBus,
	collector *observability.Collector,
	tracer *observability.Tracer,
	logger *zap.Logger,
	opts Options,
) *Router {
	return &Router{
		queryBus:  queryBus,
		collector: collector,
		tracer:    tracer,
		logger:    logger,
		opts:      opts,
	}
}

// Setup returns the full handler, wrapped in request tracing when enabled
func (rt *Router) Setup() http.Handler {
	return rt.tracer.Middleware(rt.Routes())
}

// Routes configures all routes and middleware on a chi mux
func (rt *Router) Routes() *chi.Mux {
	router := chi.NewRouter()
	errorHandler := apperrors.NewErrorHandler(rt.logger, rt.opts.Debug)

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(errorHandler.Middleware)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics(rt.collector))

	// CORS configuration; preflights fall through to the explicit OPTIONS routes
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:     rt.opts.AllowedOrigins,
		AllowedMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:     []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:     []string{"X-Request-ID"},
		AllowCredentials:   true,
		MaxAge:             300,
		OptionsPassthrough: true,
	}))

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	router.Method(http.MethodGet, "/metrics", rt.collector.Handler())

	origin := ""
	if len(rt.opts.AllowedOrigins) > 0 {
		origin = rt.opts.AllowedOrigins[0]
	}
	relatedWords := handlers.NewRelatedWordsHandler(
		rt.queryBus,
		errorHandler,
		rt.collector,
		origin,
		rt.opts.MaxExpansionDepth,
		rt.logger,
	)

	router.Route("/api", func(r chi.Router) {
		r.Get("/get_related_words", relatedWords.GetRelatedWords)
		r.Options("/get_related_words", relatedWords.Preflight)

		r.Get("/get_related_words_deep", relatedWords.GetRelatedWordsDeep)
		r.Options("/get_related_words_deep", relatedWords.Preflight)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests.
// The service holds no connections, so being up means being ready.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
