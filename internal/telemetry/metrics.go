package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all application metrics
type Metrics struct {
	RequestCounter   metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	SheetFetches     metric.Int64Counter
	SheetItems       metric.Int64Counter
	AssistantCalls   metric.Int64Counter
	AssistantErrors  metric.Int64Counter
	CacheHits        metric.Int64Counter
}

// InitMetrics initializes all application metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("content-ops-platform")

	requestCounter, err := meter.Int64Counter(
		"http.requests.total",
		metric.WithDescription("Total HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	sheetFetches, err := meter.Int64Counter(
		"sheet.fetches.total",
		metric.WithDescription("Total sheet ingestion cycles"),
	)
	if err != nil {
		return nil, err
	}

	sheetItems, err := meter.Int64Counter(
		"sheet.items.total",
		metric.WithDescription("Total content items ingested"),
	)
	if err != nil {
		return nil, err
	}

	assistantCalls, err := meter.Int64Counter(
		"assistant.calls.total",
		metric.WithDescription("Total assistant operations invoked"),
	)
	if err != nil {
		return nil, err
	}

	assistantErrors, err := meter.Int64Counter(
		"assistant.errors.total",
		metric.WithDescription("Total assistant operation failures"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter(
		"assistant.cache.hits",
		metric.WithDescription("Assistant results served from cache"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RequestCounter:  requestCounter,
		RequestDuration: requestDuration,
		SheetFetches:    sheetFetches,
		SheetItems:      sheetItems,
		AssistantCalls:  assistantCalls,
		AssistantErrors: assistantErrors,
		CacheHits:       cacheHits,
	}, nil
}

// RecordRequest records one HTTP request outcome.
func (m *Metrics) RecordRequest(method, path, status string, duration float64) {
	if m == nil {
		return
	}
	ctx := context.Background()
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.String("status", status),
	)
	m.RequestCounter.Add(ctx, 1, attrs)
	m.RequestDuration.Record(ctx, duration, attrs)
}

// RecordFetch records one ingestion cycle.
func (m *Metrics) RecordFetch(itemCount int) {
	if m == nil {
		return
	}
	ctx := context.Background()
	m.SheetFetches.Add(ctx, 1)
	m.SheetItems.Add(ctx, int64(itemCount))
}

// RecordAssistantCall records one assistant operation outcome.
func (m *Metrics) RecordAssistantCall(op string, failed bool) {
	if m == nil {
		return
	}
	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String("operation", op))
	m.AssistantCalls.Add(ctx, 1, attrs)
	if failed {
		m.AssistantErrors.Add(ctx, 1, attrs)
	}
}

// RecordCacheHit records an assistant result served from cache.
func (m *Metrics) RecordCacheHit(op string) {
	if m == nil {
		return
	}
	m.CacheHits.Add(context.Background(), 1, metric.WithAttributes(attribute.String("operation", op)))
}
