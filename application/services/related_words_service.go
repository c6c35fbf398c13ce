package services

import (
	"context"
	"errors"

	"wordgraph/application/ports"
	"wordgraph/domain/core/aggregates"
	"wordgraph/domain/core/valueobjects"
	apperrors "wordgraph/pkg/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyCompletion is the cause attached when the model answers with no terms
var ErrEmptyCompletion = errors.New("language model returned no terms")

// RelatedWordsService turns model suggestions into related-words graphs.
//
// RelatedWordsDeep costs one provider call per expanded node:
// 1 + 5 + 25 + ... + 5^(depth-1) calls for a full expansion. Terms reached
// through different parents are expanded again, independently.
type RelatedWordsService struct {
	llm         ports.LanguageModelClient
	concurrency int
	logger      *zap.Logger
}

// NewRelatedWordsService creates the service.
// concurrency bounds how many sibling expansions of one hub run at once;
// 1 keeps the expansion strictly sequential and depth-first. The bound is per
// hub: every expanding sibling opens its own group, so total in-flight
// provider calls can reach concurrency^(depth-1).
func NewRelatedWordsService(llm ports.LanguageModelClient, concurrency int, logger *zap.Logger) *RelatedWordsService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &RelatedWordsService{
		llm:         llm,
		concurrency: concurrency,
		logger:      logger,
	}
}

// RelatedWords asks the model once for related terms and returns the star
// graph with the query as hub: 1+N nodes, N hub->leaf links.
func (s *RelatedWordsService) RelatedWords(ctx context.Context, query string) (*aggregates.Graph, error) {
	hub := valueobjects.NewTerm(query)

	related, err := s.fetchRelatedTerms(ctx, hub, RelatedTermCount)
	if err != nil {
		return nil, err
	}

	graph := aggregates.NewStarGraph(hub, related)

	s.logger.Info("Related words graph built",
		zap.String("query", hub.String()),
		zap.Int("nodes", graph.NodeCount()),
		zap.Int("links", graph.LinkCount()),
	)

	return graph, nil
}

// RelatedWordsDeep expands the query recursively to the given depth.
// Depth 0 returns an empty graph without calling the model, and without a hub
// node. Any provider failure aborts the whole expansion; no partial graph is
// returned.
func (s *RelatedWordsService) RelatedWordsDeep(ctx context.Context, query string, depth int) (*aggregates.Graph, error) {
	if depth <= 0 {
		return aggregates.NewGraph(), nil
	}

	hub := valueobjects.NewTerm(query)
	descendants, err := s.descendants(ctx, hub, depth)
	if err != nil {
		return nil, err
	}

	graph := aggregates.NewGraph()
	graph.AddNode(hub)
	graph.Append(descendants)

	s.logger.Info("Expanded related words graph built",
		zap.String("query", hub.String()),
		zap.Int("depth", depth),
		zap.Int("nodes", graph.NodeCount()),
		zap.Int("links", graph.LinkCount()),
	)

	return graph, nil
}

// descendants returns everything below hub: each leaf with its hub->leaf
// link, followed by that leaf's own descendants. The hub node itself is left
// to the caller, which has already placed it.
func (s *RelatedWordsService) descendants(ctx context.Context, hub valueobjects.Term, depth int) (*aggregates.Graph, error) {
	related, err := s.fetchRelatedTerms(ctx, hub, ExpansionTermCount)
	if err != nil {
		return nil, err
	}

	var subgraphs []*aggregates.Graph
	if depth > 1 {
		subgraphs, err = s.expandChildren(ctx, related, depth-1)
		if err != nil {
			return nil, err
		}
	}

	graph := aggregates.NewGraph()
	for i, leaf := range related {
		graph.AddLeaf(hub, leaf)
		if subgraphs != nil {
			graph.Append(subgraphs[i])
		}
	}

	return graph, nil
}

// expandChildren expands each leaf and returns the sub-graphs indexed like
// leaves, so splicing them back keeps depth-first order regardless of the
// order in which concurrent expansions finish.
func (s *RelatedWordsService) expandChildren(ctx context.Context, leaves []valueobjects.Term, depth int) ([]*aggregates.Graph, error) {
	subgraphs := make([]*aggregates.Graph, len(leaves))

	if s.concurrency == 1 {
		for i, leaf := range leaves {
			sub, err := s.descendants(ctx, leaf, depth)
			if err != nil {
				return nil, err
			}
			subgraphs[i] = sub
		}
		return subgraphs, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, leaf := range leaves {
		i, leaf := i, leaf
		g.Go(func() error {
			sub, err := s.descendants(gctx, leaf, depth)
			if err != nil {
				return err
			}
			subgraphs[i] = sub
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return subgraphs, nil
}

// fetchRelatedTerms makes exactly one provider call for the hub term
func (s *RelatedWordsService) fetchRelatedTerms(ctx context.Context, hub valueobjects.Term, count int) ([]valueobjects.Term, error) {
	completion, err := s.llm.Complete(ctx, SystemPrompt, BuildPrompt(hub, count))
	if err != nil {
		if apperrors.IsProvider(err) {
			return nil, err
		}
		return nil, apperrors.NewProviderError(err)
	}

	related := valueobjects.ParseTerms(completion)
	if len(related) == 0 {
		return nil, apperrors.NewProviderError(ErrEmptyCompletion)
	}

	s.logger.Debug("Related terms received",
		zap.String("term", hub.String()),
		zap.Int("requested", count),
		zap.Int("received", len(related)),
	)

	return related, nil
}
