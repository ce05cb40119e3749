// Package summary turns normalized calendar events into the text payload
// sent to the language model, and wraps the Anthropic Messages API call
// that produces the final summary.
//
// The rendering and payload assembly are deterministic: the same events
// always produce the same bytes. Only the Summarize call talks to the
// network.
package summary
