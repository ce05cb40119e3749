package summary

import (
	"calsum/internal/calendar"
)

// Section headers and the empty-week sentence are fixed so the model
// input is stable across runs.
const (
	WeeklyHeader   = "=== WEEKLY EVENTS (Next 7 Days) ===\n\n"
	MonthlyHeader  = "\n=== MONTHLY LOOK-AHEAD (Important Items Beyond This Week) ===\n\n"
	NoWeeklyEvents = "No events scheduled for the next week.\n"
)

// Payload is the text prepared for the summarization request. It is
// built fresh per run and never persisted.
type Payload struct {
	WeeklyText   string
	MonthlyText  string
	CombinedText string
}

// Build merges the weekly and monthly event views into one payload.
//
// Monthly events already covered by the weekly view are excluded: only
// events starting strictly after the start of the last weekly event
// qualify for the look-ahead section. Both slices are assumed ordered by
// start time, which the calendar fetch guarantees.
//
// When weekly is empty no overlap boundary exists and the monthly
// section is omitted entirely, matching the weekly-centric purpose of
// the summary.
func Build(weekly, monthly []calendar.Event) Payload {
	payload := Payload{WeeklyText: WeeklyHeader}

	if len(weekly) == 0 {
		payload.WeeklyText += NoWeeklyEvents
	} else {
		payload.WeeklyText += RenderEvents(weekly) + "\n"
	}

	if future := futureEvents(weekly, monthly); len(future) > 0 {
		payload.MonthlyText = MonthlyHeader + RenderEvents(future) + "\n"
	}

	payload.CombinedText = payload.WeeklyText + payload.MonthlyText
	return payload
}

// futureEvents filters monthly down to events beyond the weekly window.
func futureEvents(weekly, monthly []calendar.Event) []calendar.Event {
	if len(weekly) == 0 || len(monthly) == 0 {
		return nil
	}

	weeklyEnd := weekly[len(weekly)-1].Start

	var future []calendar.Event
	for _, event := range monthly {
		if event.Start.After(weeklyEnd) {
			future = append(future, event)
		}
	}
	return future
}
