// Package instrumentation provides OpenTelemetry metrics for calsum.
//
// A single run records counters and durations for the three external
// calls (calendar fetch, summarization, delivery) and flushes them to
// stdout on shutdown. Set INSTRUMENTATION_ENABLED=false to disable all
// recording; the Metrics methods are safe no-ops then.
package instrumentation
