// Package observe holds the OpenTelemetry metric instruments of readaid and
// the HTTP middleware that records them.
//
// Tests should build a [Metrics] with [NewMetrics] over an SDK meter provider
// with a manual reader; production code uses [InitProvider] to bridge the
// instruments to a Prometheus /metrics endpoint.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/nguyentantai21042004/readaid"

// Document outcomes recorded by RecordDocument.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
	StatusStale   = "stale"
	StatusError   = "error"
)

// Sources of stale results recorded by RecordStale.
const (
	SourceDocument = "document"
	SourceAPI      = "api"
)

// RouteOther is recorded for requests that matched no route.
const RouteOther = "other"

// Metrics holds all metric instruments. The instruments are safe for
// concurrent use.
type Metrics struct {
	// DocumentsProcessed counts watched documents by outcome. Attribute:
	// status.
	DocumentsProcessed metric.Int64Counter

	// OperationDuration tracks the time spent in one engine operation.
	// Attribute: operation.
	OperationDuration metric.Float64Histogram

	// StaleResults counts results dropped because a newer request for the
	// same key overtook them. Attribute: source.
	StaleResults metric.Int64Counter

	// ChatReplies counts assistant replies. Attribute: rule.
	ChatReplies metric.Int64Counter

	// HTTPRequestDuration tracks API request time. Attributes: method,
	// route, status.
	HTTPRequestDuration metric.Float64Histogram
}

// operationBuckets are sized for in-process string work, in seconds.
var operationBuckets = []float64{
	0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1,
}

var httpBuckets = []float64{
	0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5,
}

// NewMetrics creates all instruments from mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.DocumentsProcessed, err = m.Int64Counter("readaid.documents.processed",
		metric.WithDescription("Documents taken from the input directory, by outcome."),
	); err != nil {
		return nil, err
	}
	if met.OperationDuration, err = m.Float64Histogram("readaid.operation.duration",
		metric.WithDescription("Time spent in one text operation."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(operationBuckets...),
	); err != nil {
		return nil, err
	}
	if met.StaleResults, err = m.Int64Counter("readaid.results.stale",
		metric.WithDescription("Results discarded because a newer request superseded them."),
	); err != nil {
		return nil, err
	}
	if met.ChatReplies, err = m.Int64Counter("readaid.chat.replies",
		metric.WithDescription("Assistant replies, by matched rule."),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("readaid.http.request.duration",
		metric.WithDescription("HTTP request processing time."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(httpBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// DefaultMetrics returns metrics bound to the global meter provider. Call
// InitProvider first to export them.
func DefaultMetrics() *Metrics {
	defaultOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordDocument counts one processed document with its outcome.
func (m *Metrics) RecordDocument(ctx context.Context, status string) {
	m.DocumentsProcessed.Add(ctx, 1,
		metric.WithAttributes(attribute.String("status", status)),
	)
}

// RecordOperation records the duration of one operation in seconds.
func (m *Metrics) RecordOperation(ctx context.Context, operation string, seconds float64) {
	m.OperationDuration.Record(ctx, seconds,
		metric.WithAttributes(attribute.String("operation", operation)),
	)
}

// RecordStale counts one discarded result from source.
func (m *Metrics) RecordStale(ctx context.Context, source string) {
	m.StaleResults.Add(ctx, 1,
		metric.WithAttributes(attribute.String("source", source)),
	)
}

// RecordChatReply counts an assistant reply. An empty rule is recorded as
// "fallback".
func (m *Metrics) RecordChatReply(ctx context.Context, rule string) {
	if rule == "" {
		rule = "fallback"
	}
	m.ChatReplies.Add(ctx, 1,
		metric.WithAttributes(attribute.String("rule", rule)),
	)
}
