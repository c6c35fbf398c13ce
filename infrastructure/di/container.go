package di

import (
	"wordgraph/application/ports"
	querybus "wordgraph/application/queries/bus"
	"wordgraph/infrastructure/config"
	"wordgraph/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	LLM          ports.LanguageModelClient
	RelatedWords ports.GraphGenerator
	Events       ports.EventPublisher
	QueryBus     *querybus.QueryBus
	Metrics      *observability.Metrics
	Collector    *observability.Collector
	Tracer       *observability.Tracer
}
