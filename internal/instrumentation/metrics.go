package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrService   = "service"
	attrOperation = "operation"
	attrStatus    = "status"
	attrResult    = "result"
	attrWindow    = "window"
	attrMode      = "mode"
)

// Status values recorded with operations.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Metrics provides methods for recording observability metrics. All
// methods are safe on a zero Metrics value, which records nothing.
type Metrics struct {
	runsTotal              metric.Int64Counter
	apiOperationsTotal     metric.Int64Counter
	apiOperationDuration   metric.Float64Histogram
	eventsProcessedTotal   metric.Int64Counter
	messagesDeliveredTotal metric.Int64Counter
}

// NewMetrics creates a Metrics instance with all instruments initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.runsTotal, err = meter.Int64Counter(
		"summary_runs_total",
		metric.WithDescription("Total number of summary runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary_runs_total counter: %w", err)
	}

	m.apiOperationsTotal, err = meter.Int64Counter(
		"api_operations_total",
		metric.WithDescription("Total number of external API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create api_operations_total counter: %w", err)
	}

	m.apiOperationDuration, err = meter.Float64Histogram(
		"api_operation_duration_seconds",
		metric.WithDescription("External API operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create api_operation_duration_seconds histogram: %w", err)
	}

	m.eventsProcessedTotal, err = meter.Int64Counter(
		"calendar_events_processed_total",
		metric.WithDescription("Total number of calendar events normalized"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar_events_processed_total counter: %w", err)
	}

	m.messagesDeliveredTotal, err = meter.Int64Counter(
		"messages_delivered_total",
		metric.WithDescription("Total number of summary messages delivered"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create messages_delivered_total counter: %w", err)
	}

	return m, nil
}

// RecordRun records the outcome of one summary run.
// Result should be one of: "success", "error", "no_events".
func (m *Metrics) RecordRun(ctx context.Context, result string) {
	if m.runsTotal == nil {
		return // Instrumentation not initialized
	}

	m.runsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrResult, result),
	))
}

// RecordAPIOperation records one external API call with its duration.
//
// Parameters:
//   - service: external service name (calendar, anthropic, twilio)
//   - operation: operation type (list, summarize, send)
//   - status: "success" or "error"
func (m *Metrics) RecordAPIOperation(ctx context.Context, service, operation, status string, duration time.Duration) {
	if m.apiOperationsTotal == nil || m.apiOperationDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrService, service),
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.apiOperationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.apiOperationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordEventsProcessed records how many events a fetch window produced
// after normalization. Window is "weekly" or "monthly".
func (m *Metrics) RecordEventsProcessed(ctx context.Context, window string, count int) {
	if m.eventsProcessedTotal == nil {
		return // Instrumentation not initialized
	}

	m.eventsProcessedTotal.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String(attrWindow, window),
	))
}

// RecordDelivery records a delivered (or dry-run echoed) message.
func (m *Metrics) RecordDelivery(ctx context.Context, dryRun bool, status string) {
	if m.messagesDeliveredTotal == nil {
		return // Instrumentation not initialized
	}

	mode := "live"
	if dryRun {
		mode = "dry_run"
	}

	m.messagesDeliveredTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrMode, mode),
		attribute.String(attrStatus, status),
	))
}
