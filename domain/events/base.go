package events

import (
	"time"

	"github.com/google/uuid"
)

// SourceBackend identifies events emitted by this service
const SourceBackend = "wordgraph.backend"

// DomainEvent is the base interface for all domain events
// Events represent something that has happened in the past
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
	GetVersion() int
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }
func (e BaseEvent) GetVersion() int         { return e.Version }

// GraphGenerated is raised after a related-words graph has been built.
// It carries counts only, never the graph itself.
type GraphGenerated struct {
	BaseEvent
	Query     string `json:"query"`
	Depth     int    `json:"depth"`
	NodeCount int    `json:"node_count"`
	LinkCount int    `json:"link_count"`
}

// NewGraphGenerated creates a GraphGenerated event with a fresh aggregate id
func NewGraphGenerated(query string, depth, nodeCount, linkCount int, timestamp time.Time) GraphGenerated {
	return GraphGenerated{
		BaseEvent: BaseEvent{
			AggregateID: uuid.New().String(),
			EventType:   "graph.generated",
			Timestamp:   timestamp,
			Version:     1,
		},
		Query:     query,
		Depth:     depth,
		NodeCount: nodeCount,
		LinkCount: linkCount,
	}
}
