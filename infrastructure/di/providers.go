package di

import (
	"context"
	"fmt"

	"wordgraph/application/ports"
	querybus "wordgraph/application/queries/bus"
	queryhandlers "wordgraph/application/queries/handlers"
	"wordgraph/application/services"
	"wordgraph/infrastructure/config"
	"wordgraph/infrastructure/llm"
	"wordgraph/infrastructure/messaging/eventbridge"
	"wordgraph/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "wordgraph"

// ProvideLogger creates a new logger instance.
// Lambda always logs JSON so CloudWatch can index the fields.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() || cfg.IsLambda {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	return zapCfg.Build(zap.Fields(zap.String("service", serviceName)))
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideMetrics creates the CloudWatch metrics recorder.
// With metrics disabled the recorder has no client and drops every datum.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	namespace := fmt.Sprintf("WordGraph/%s", cfg.Environment)
	if !cfg.EnableMetrics {
		return observability.NewMetrics(namespace, nil, logger)
	}
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideCollector creates the Prometheus collector served at /metrics
func ProvideCollector() *observability.Collector {
	return observability.NewCollector(serviceName)
}

// ProvideTracer returns an X-Ray tracer, or nil when tracing is disabled
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.EnableTracing {
		return nil
	}
	return observability.NewTracer(serviceName)
}

// ProvideLanguageModel creates the OpenAI chat completion client
func ProvideLanguageModel(
	cfg *config.Config,
	tracer *observability.Tracer,
	metrics *observability.Metrics,
	logger *zap.Logger,
) ports.LanguageModelClient {
	return llm.NewOpenAIClient(llm.Options{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
	}, tracer, metrics, logger)
}

// ProvideRelatedWordsService creates the graph generator
func ProvideRelatedWordsService(
	client ports.LanguageModelClient,
	cfg *config.Config,
	logger *zap.Logger,
) ports.GraphGenerator {
	return services.NewRelatedWordsService(client, cfg.ExpansionConcurrency, logger)
}

// ProvideEventPublisher creates an EventBridge publisher, or a no-op one when
// no event bus is configured
func ProvideEventPublisher(
	client *awseventbridge.Client,
	cfg *config.Config,
	logger *zap.Logger,
) ports.EventPublisher {
	if cfg.EventBusName == "" {
		logger.Info("EVENT_BUS_NAME not set, graph events are disabled")
		return eventbridge.NoopPublisher{}
	}
	return eventbridge.NewEventBridgePublisher(client, cfg.EventBusName, logger)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	generator ports.GraphGenerator,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	err := queryhandlers.RegisterRelatedWordsQueries(
		queryBus,
		generator,
		publisher,
		logger,
		querybus.NewLoggingMiddleware(logger),
		querybus.NewMetricsMiddleware(metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register queries: %w", err)
	}

	return queryBus, nil
}
