package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wordgraph/application/ports"
	"wordgraph/pkg/observability"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

var _ ports.LanguageModelClient = (*OpenAIClient)(nil)

// ErrNoChoices is returned when the provider answers without any completion
var ErrNoChoices = errors.New("provider returned no choices")

// OpenAIClient implements LanguageModelClient with the OpenAI chat completion API
type OpenAIClient struct {
	client  *openai.Client
	model   string
	tracer  *observability.Tracer
	metrics *observability.Metrics
	logger  *zap.Logger
}

// Options configures an OpenAIClient
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewOpenAIClient creates a client for the given key and model.
// An empty BaseURL keeps the library default endpoint.
func NewOpenAIClient(
	opts Options,
	tracer *observability.Tracer,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *OpenAIClient {
	clientCfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		clientCfg.BaseURL = opts.BaseURL
	}

	logger.Info("Initializing OpenAI client", zap.String("model", opts.Model))

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   opts.Model,
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Complete sends a system and user message and returns the first choice's text
func (c *OpenAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	var content string
	start := time.Now()

	err := c.tracer.TraceFunction(ctx, "openai.chat_completion", func(ctx context.Context) error {
		c.tracer.AddAnnotation(ctx, "model", c.model)

		req := openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: system},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		}

		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return fmt.Errorf("OpenAI API call failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return ErrNoChoices
		}

		c.logger.Debug("Received response from OpenAI",
			zap.String("model", resp.Model),
			zap.String("finish_reason", string(resp.Choices[0].FinishReason)),
			zap.Int("total_tokens", resp.Usage.TotalTokens),
		)
		c.tracer.AddMetadata(ctx, "finish_reason", string(resp.Choices[0].FinishReason))
		c.tracer.AddMetadata(ctx, "usage", resp.Usage)

		content = resp.Choices[0].Message.Content
		return nil
	})

	c.metrics.RecordProviderCall(ctx, c.model, time.Since(start), err)
	if err != nil {
		c.logger.Error("Language model call failed",
			zap.String("model", c.model),
			zap.Error(err),
		)
		return "", err
	}

	return content, nil
}
