package summary

import (
	"strings"
	"testing"

	gcal "google.golang.org/api/calendar/v3"

	"calsum/internal/calendar"
)

// TestPipelineWeekWithLookAhead walks raw provider records through
// normalization and payload assembly: a declined event disappears, the
// all-day and timed events render as weekly blocks, and only the monthly
// event beyond the weekly window survives the overlap filter.
func TestPipelineWeekWithLookAhead(t *testing.T) {
	rawWeekly := []*gcal.Event{
		{
			Summary: "Sprint Kickoff",
			Start:   &gcal.EventDateTime{DateTime: "2026-09-01T09:00:00Z"},
			End:     &gcal.EventDateTime{DateTime: "2026-09-01T10:00:00Z"},
		},
		{
			Summary: "Public Holiday",
			Start:   &gcal.EventDateTime{Date: "2026-09-02"},
			End:     &gcal.EventDateTime{Date: "2026-09-03"},
		},
		{
			Summary: "Vendor Pitch",
			Start:   &gcal.EventDateTime{DateTime: "2026-09-04T15:00:00Z"},
			End:     &gcal.EventDateTime{DateTime: "2026-09-04T16:00:00Z"},
			Attendees: []*gcal.EventAttendee{
				{Email: "me@example.com", Self: true, ResponseStatus: "declined"},
			},
		},
	}
	rawMonthly := []*gcal.Event{
		{
			// Starts before the last weekly event: covered by the weekly view.
			Summary: "Design Review",
			Start:   &gcal.EventDateTime{DateTime: "2026-09-03T11:00:00Z"},
			End:     &gcal.EventDateTime{DateTime: "2026-09-03T12:00:00Z"},
		},
		{
			Summary: "Tax Deadline",
			Start:   &gcal.EventDateTime{Date: "2026-09-20"},
			End:     &gcal.EventDateTime{Date: "2026-09-21"},
		},
	}

	weekly, err := calendar.NormalizeAll(rawWeekly)
	if err != nil {
		t.Fatalf("NormalizeAll(weekly) error = %v", err)
	}
	monthly, err := calendar.NormalizeAll(rawMonthly)
	if err != nil {
		t.Fatalf("NormalizeAll(monthly) error = %v", err)
	}

	// The declined event is gone.
	if len(weekly) != 2 {
		t.Fatalf("len(weekly) = %d, want 2", len(weekly))
	}

	payload := Build(weekly, monthly)

	for _, want := range []string{"• Sprint Kickoff", "• Public Holiday"} {
		if !strings.Contains(payload.WeeklyText, want) {
			t.Errorf("WeeklyText missing %q:\n%s", want, payload.WeeklyText)
		}
	}
	if strings.Contains(payload.CombinedText, "Vendor Pitch") {
		t.Error("declined event leaked into the payload")
	}

	if !strings.Contains(payload.MonthlyText, "• Tax Deadline") {
		t.Errorf("MonthlyText missing the future event:\n%s", payload.MonthlyText)
	}
	if strings.Contains(payload.MonthlyText, "Design Review") {
		t.Error("monthly section contains an event already covered by the weekly view")
	}

	if !strings.Contains(payload.CombinedText, strings.TrimSpace(WeeklyHeader)) ||
		!strings.Contains(payload.CombinedText, strings.TrimSpace(MonthlyHeader)) {
		t.Error("combined text missing a section header")
	}

	// The all-day event renders with its marker, the timed one with its range.
	if !strings.Contains(payload.WeeklyText, "2026-09-02 (All Day)") {
		t.Errorf("all-day rendering missing:\n%s", payload.WeeklyText)
	}
	if !strings.Contains(payload.WeeklyText, "2026-09-01 09:00 - 10:00") {
		t.Errorf("timed rendering missing:\n%s", payload.WeeklyText)
	}
}
