package handlers

import (
	"context"
	"fmt"

	"wordgraph/application/ports"
	"wordgraph/application/queries"
	querybus "wordgraph/application/queries/bus"

	"go.uber.org/zap"
)

// RegisterRelatedWordsQueries registers both related-words handlers on the bus,
// each wrapped in the given middlewares
func RegisterRelatedWordsQueries(
	queryBus *querybus.QueryBus,
	generator ports.GraphGenerator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
	middlewares ...querybus.Middleware,
) error {
	relatedHandler := NewGetRelatedWordsHandler(generator, publisher, logger)
	err := queryBus.Register(queries.GetRelatedWordsQuery{}, querybus.Chain(
		querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.GetRelatedWordsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return relatedHandler.Handle(ctx, q)
		}),
		middlewares...,
	))
	if err != nil {
		return err
	}

	deepHandler := NewGetRelatedWordsDeepHandler(generator, publisher, logger)
	return queryBus.Register(queries.GetRelatedWordsDeepQuery{}, querybus.Chain(
		querybus.QueryHandlerFunc(func(ctx context.Context, query querybus.Query) (interface{}, error) {
			q, ok := query.(queries.GetRelatedWordsDeepQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return deepHandler.Handle(ctx, q)
		}),
		middlewares...,
	))
}
