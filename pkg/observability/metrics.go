package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// CloudWatchAPI is the subset of the CloudWatch client used for metrics
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Metrics publishes application metrics to CloudWatch.
// A nil *Metrics or a nil client records nothing.
type Metrics struct {
	namespace string
	client    CloudWatchAPI
	logger    *zap.Logger
}

// NewMetrics creates a new metrics instance
func NewMetrics(namespace string, client CloudWatchAPI, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// RecordProviderCall records latency and outcome of one language model call
func (m *Metrics) RecordProviderCall(ctx context.Context, model string, duration time.Duration, err error) {
	m.put(ctx, "ProviderCall", duration, err, types.Dimension{
		Name:  aws.String("Model"),
		Value: aws.String(model),
	})
}

// RecordQueryExecution records latency and outcome of one query handler run
func (m *Metrics) RecordQueryExecution(ctx context.Context, queryName string, duration time.Duration, err error) {
	m.put(ctx, "QueryExecution", duration, err, types.Dimension{
		Name:  aws.String("QueryName"),
		Value: aws.String(queryName),
	})
}

func (m *Metrics) put(ctx context.Context, name string, duration time.Duration, err error, dimension types.Dimension) {
	if m == nil || m.client == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "failure"
	}
	dimensions := []types.Dimension{
		dimension,
		{Name: aws.String("Status"), Value: aws.String(status)},
	}
	now := time.Now()

	input := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(name + "Latency"),
				Dimensions: dimensions,
				Value:      aws.Float64(float64(duration.Milliseconds())),
				Unit:       types.StandardUnitMilliseconds,
				Timestamp:  aws.Time(now),
			},
			{
				MetricName: aws.String(name + "Count"),
				Dimensions: dimensions,
				Value:      aws.Float64(1),
				Unit:       types.StandardUnitCount,
				Timestamp:  aws.Time(now),
			},
		},
	}

	// metric failures never fail the operation
	if _, putErr := m.client.PutMetricData(ctx, input); putErr != nil && m.logger != nil {
		m.logger.Warn("Failed to send metrics", zap.String("metric", name), zap.Error(putErr))
	}
}
