package summary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"calsum/internal/calendar"
)

// Description previews are cut at a fixed length so a single verbose
// event cannot dominate the model input.
const (
	descriptionLimit    = 200
	descriptionEllipsis = "..."
)

// RenderEvent renders one event as a text block. Field order is fixed:
// title, time, location, description, attendee count. Optional lines
// appear only when their source value is non-empty.
func RenderEvent(event calendar.Event) string {
	var b strings.Builder

	fmt.Fprintf(&b, "• %s\n", event.Title)
	fmt.Fprintf(&b, "  Time: %s\n", formatEventTime(event))

	if event.Location != "" {
		fmt.Fprintf(&b, "  Location: %s\n", event.Location)
	}

	if event.Description != "" {
		desc := event.Description
		if len(desc) > descriptionLimit {
			desc = cut(desc, descriptionLimit) + descriptionEllipsis
		}
		fmt.Fprintf(&b, "  Description: %s\n", desc)
	}

	if len(event.Attendees) > 0 {
		fmt.Fprintf(&b, "  Attendees: %d people\n", len(event.Attendees))
	}

	return b.String()
}

// RenderEvents renders an ordered sequence of events, blocks separated
// by a blank line.
func RenderEvents(events []calendar.Event) string {
	blocks := make([]string, len(events))
	for i, event := range events {
		blocks[i] = RenderEvent(event)
	}
	return strings.Join(blocks, "\n")
}

// formatEventTime renders the time line. All-day events show the date
// portion only. Timed events show "<date> <start> - <end>"; when either
// endpoint failed to parse, the raw provider values are shown verbatim
// instead of failing the render.
func formatEventTime(event calendar.Event) string {
	if event.AllDay {
		date := event.RawStart
		if idx := strings.IndexByte(date, 'T'); idx >= 0 {
			date = date[:idx]
		}
		return date + " (All Day)"
	}

	if event.Start.IsZero() || event.End.IsZero() {
		return event.RawStart + " - " + event.RawEnd
	}

	return fmt.Sprintf("%s - %s",
		event.Start.Format("2006-01-02 15:04"),
		event.End.Format("15:04"))
}

// cut truncates s to at most n bytes, backing up over a split UTF-8
// sequence so the result stays valid.
func cut(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
