package ports

import (
	"context"

	"wordgraph/domain/core/aggregates"
	"wordgraph/domain/events"
)

// LanguageModelClient is the chat-completion capability the services depend on.
// It is constructed once at startup and injected, so tests can substitute a stub.
type LanguageModelClient interface {
	// Complete sends one system instruction and one user prompt and returns
	// the model's raw text answer
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// GraphGenerator builds related-words graphs for a query term
type GraphGenerator interface {
	RelatedWords(ctx context.Context, query string) (*aggregates.Graph, error)
	RelatedWordsDeep(ctx context.Context, query string, depth int) (*aggregates.Graph, error)
}
