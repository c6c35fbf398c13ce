package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"wordgraph/application/queries"
	querybus "wordgraph/application/queries/bus"
	"wordgraph/domain/core/aggregates"
	apperrors "wordgraph/pkg/errors"
	"wordgraph/pkg/observability"

	"go.uber.org/zap"
)

// DefaultExpansionDepth is used when the deep endpoint gets no depth parameter
const DefaultExpansionDepth = 2

// RelatedWordsHandler handles the related-words HTTP endpoints
type RelatedWordsHandler struct {
	queryBus     *querybus.QueryBus
	errorHandler *apperrors.ErrorHandler
	collector    *observability.Collector
	origin       string
	maxDepth     int
	logger       *zap.Logger
}

// NewRelatedWordsHandler creates a new related-words handler.
// origin is echoed in Access-Control-Allow-Origin on successful responses.
func NewRelatedWordsHandler(
	queryBus *querybus.QueryBus,
	errorHandler *apperrors.ErrorHandler,
	collector *observability.Collector,
	origin string,
	maxDepth int,
	logger *zap.Logger,
) *RelatedWordsHandler {
	return &RelatedWordsHandler{
		queryBus:     queryBus,
		errorHandler: errorHandler,
		collector:    collector,
		origin:       origin,
		maxDepth:     maxDepth,
		logger:       logger,
	}
}

// GetRelatedWords handles GET /api/get_related_words?query=<term>
func (h *RelatedWordsHandler) GetRelatedWords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	h.logger.Info("Received query", zap.String("query", query))

	result, err := h.queryBus.Ask(r.Context(), queries.GetRelatedWordsQuery{Query: query})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respondGraph(w, r, 1, result)
}

// GetRelatedWordsDeep handles GET /api/get_related_words_deep?query=<term>&depth=<n>
func (h *RelatedWordsHandler) GetRelatedWordsDeep(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	depth := DefaultExpansionDepth
	if depth > h.maxDepth {
		depth = h.maxDepth
	}
	if raw := r.URL.Query().Get("depth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.errorHandler.Handle(w, r, apperrors.NewValidationError(fmt.Sprintf("depth must be an integer, got %q", raw)))
			return
		}
		depth = parsed
	}

	h.logger.Info("Received expansion query",
		zap.String("query", query),
		zap.Int("depth", depth),
	)

	result, err := h.queryBus.Ask(r.Context(), queries.GetRelatedWordsDeepQuery{
		Query:    query,
		Depth:    depth,
		MaxDepth: h.maxDepth,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.respondGraph(w, r, depth, result)
}

// Preflight answers CORS preflight requests with 204 and no body
func (h *RelatedWordsHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Helper methods

func (h *RelatedWordsHandler) respondGraph(w http.ResponseWriter, r *http.Request, depth int, result interface{}) {
	graph, ok := result.(*aggregates.Graph)
	if !ok {
		h.errorHandler.Handle(w, r, apperrors.NewInternalError(fmt.Sprintf("unexpected query result %T", result)))
		return
	}

	h.collector.RecordGraph(depth, graph.NodeCount())
	h.logger.Debug("Returning graph",
		zap.Int("nodes", graph.NodeCount()),
		zap.Int("links", graph.LinkCount()),
	)

	w.Header().Set("Access-Control-Allow-Origin", h.origin)
	w.Header().Set("Access-Control-Allow-Credentials", "true")
	h.respondJSON(w, http.StatusOK, graph)
}

func (h *RelatedWordsHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
