// Package logging provides structured logging helpers for calsum.
//
// It centralizes attribute naming so every package logs the same keys,
// and hashes email addresses before they reach the log output.
//
// Usage:
//
//	logger := logging.WithOperation(slog.Default(), "calendar.fetch")
//	logger.Info("events fetched", logging.Status(logging.StatusSuccess))
package logging
