package handlers

import (
	"context"
	"time"

	"wordgraph/application/ports"
	"wordgraph/application/queries"
	"wordgraph/domain/core/aggregates"
	"wordgraph/domain/events"

	"go.uber.org/zap"
)

// GetRelatedWordsHandler handles one-level related-words queries
type GetRelatedWordsHandler struct {
	generator ports.GraphGenerator
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewGetRelatedWordsHandler creates a new related-words handler
func NewGetRelatedWordsHandler(
	generator ports.GraphGenerator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *GetRelatedWordsHandler {
	return &GetRelatedWordsHandler{
		generator: generator,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the query
func (h *GetRelatedWordsHandler) Handle(ctx context.Context, query queries.GetRelatedWordsQuery) (*aggregates.Graph, error) {
	graph, err := h.generator.RelatedWords(ctx, query.Query)
	if err != nil {
		return nil, err
	}

	publishGenerated(ctx, h.publisher, h.logger, query.Query, 1, graph)
	return graph, nil
}

// GetRelatedWordsDeepHandler handles recursive expansion queries
type GetRelatedWordsDeepHandler struct {
	generator ports.GraphGenerator
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewGetRelatedWordsDeepHandler creates a new expansion handler
func NewGetRelatedWordsDeepHandler(
	generator ports.GraphGenerator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *GetRelatedWordsDeepHandler {
	return &GetRelatedWordsDeepHandler{
		generator: generator,
		publisher: publisher,
		logger:    logger,
	}
}

// Handle executes the query
func (h *GetRelatedWordsDeepHandler) Handle(ctx context.Context, query queries.GetRelatedWordsDeepQuery) (*aggregates.Graph, error) {
	graph, err := h.generator.RelatedWordsDeep(ctx, query.Query, query.Depth)
	if err != nil {
		return nil, err
	}

	publishGenerated(ctx, h.publisher, h.logger, query.Query, query.Depth, graph)
	return graph, nil
}

// publishGenerated announces a finished graph. Publishing is best effort:
// failures are logged and the caller still gets its graph.
func publishGenerated(
	ctx context.Context,
	publisher ports.EventPublisher,
	logger *zap.Logger,
	query string,
	depth int,
	graph *aggregates.Graph,
) {
	if publisher == nil {
		return
	}

	event := events.NewGraphGenerated(query, depth, graph.NodeCount(), graph.LinkCount(), time.Now())
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish graph event",
			zap.String("query", query),
			zap.String("eventID", event.GetAggregateID()),
			zap.Error(err),
		)
	}
}
