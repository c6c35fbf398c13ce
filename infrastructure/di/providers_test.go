package di

import (
	"context"
	"testing"

	"wordgraph/application/queries"
	"wordgraph/domain/core/aggregates"
	"wordgraph/infrastructure/config"
	"wordgraph/infrastructure/messaging/eventbridge"
	"wordgraph/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedGenerator struct{}

func (fixedGenerator) RelatedWords(context.Context, string) (*aggregates.Graph, error) {
	return aggregates.NewGraph(), nil
}

func (fixedGenerator) RelatedWordsDeep(context.Context, string, int) (*aggregates.Graph, error) {
	return aggregates.NewGraph(), nil
}

func TestProvideLogger(t *testing.T) {
	logger, err := ProvideLogger(&config.Config{Environment: "production", LogLevel: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	_, err = ProvideLogger(&config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestProvideTracer(t *testing.T) {
	assert.Nil(t, ProvideTracer(&config.Config{}))
	assert.NotNil(t, ProvideTracer(&config.Config{EnableTracing: true}))
}

func TestProvideEventPublisher_NoBusIsNoop(t *testing.T) {
	publisher := ProvideEventPublisher(nil, &config.Config{}, zap.NewNop())
	assert.IsType(t, eventbridge.NoopPublisher{}, publisher)
}

func TestProvideQueryBus_RegistersRelatedWordsQueries(t *testing.T) {
	logger := zap.NewNop()
	metrics := observability.NewMetrics("test", nil, logger)

	queryBus, err := ProvideQueryBus(fixedGenerator{}, eventbridge.NoopPublisher{}, metrics, logger)
	require.NoError(t, err)

	result, err := queryBus.Ask(context.Background(), queries.GetRelatedWordsQuery{Query: "Go"})
	require.NoError(t, err)
	assert.IsType(t, &aggregates.Graph{}, result)

	result, err = queryBus.Ask(context.Background(), queries.GetRelatedWordsDeepQuery{Query: "Go", Depth: 1, MaxDepth: 3})
	require.NoError(t, err)
	assert.IsType(t, &aggregates.Graph{}, result)
}
