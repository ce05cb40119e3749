package calendar

import (
	"errors"
	"fmt"
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

// Defaults applied when a raw record omits a field.
const (
	DefaultTitle     = "No Title"
	DefaultOrganizer = "Unknown"
)

// ResponseUnknown is the attendee response status used when the provider
// record carries none.
const ResponseUnknown = "unknown"

// ErrDeclined signals that the authenticated user has declined the event.
// It is an intentional drop, not a failure: NormalizeAll skips such
// records silently.
var ErrDeclined = errors.New("event declined by authenticated user")

// MalformedEventError reports a raw record that lacks required start or
// end data. It aborts normalization of that single record only.
type MalformedEventError struct {
	EventID string
	Reason  string
}

func (e *MalformedEventError) Error() string {
	if e.EventID != "" {
		return fmt.Sprintf("malformed event %s: %s", e.EventID, e.Reason)
	}
	return fmt.Sprintf("malformed event: %s", e.Reason)
}

// Event is the canonical, provider-agnostic representation of a calendar
// entry. It is constructed once by Normalize and not mutated afterwards.
type Event struct {
	Title       string
	Description string

	// Start and End are the parsed endpoints. For all-day events they
	// hold the calendar date at midnight UTC. A zero value means the raw
	// field did not parse; RawStart/RawEnd are kept for degraded
	// rendering in that case.
	Start    time.Time
	End      time.Time
	RawStart string
	RawEnd   string
	AllDay   bool

	Location   string
	Attendees  []Attendee
	Organizer  string
	SourceLink string
}

// Attendee describes an event participant other than the authenticated
// user.
type Attendee struct {
	Email          string
	DisplayName    string
	ResponseStatus string // "accepted", "declined", "tentative", "needsAction", "unknown"
}

// Normalize converts a raw provider event into its canonical form.
//
// It returns ErrDeclined when the authenticated user's own attendance
// status is "declined", and a *MalformedEventError when the record lacks
// usable start or end data. All other optional fields fall back to fixed
// defaults.
func Normalize(raw *gcal.Event) (Event, error) {
	if raw == nil {
		return Event{}, &MalformedEventError{Reason: "nil record"}
	}

	if isDeclined(raw) {
		return Event{}, ErrDeclined
	}

	rawStart, allDay, err := extractEndpoint(raw.Start)
	if err != nil {
		return Event{}, &MalformedEventError{EventID: raw.Id, Reason: "missing start"}
	}
	rawEnd, _, err := extractEndpoint(raw.End)
	if err != nil {
		return Event{}, &MalformedEventError{EventID: raw.Id, Reason: "missing end"}
	}

	event := Event{
		Title:       raw.Summary,
		Description: raw.Description,
		RawStart:    rawStart,
		RawEnd:      rawEnd,
		AllDay:      allDay,
		Start:       parseEndpoint(rawStart, allDay),
		End:         parseEndpoint(rawEnd, allDay),
		Location:    raw.Location,
		SourceLink:  raw.HtmlLink,
		Organizer:   DefaultOrganizer,
	}

	if event.Title == "" {
		event.Title = DefaultTitle
	}
	if raw.Organizer != nil && raw.Organizer.DisplayName != "" {
		event.Organizer = raw.Organizer.DisplayName
	}

	for _, att := range raw.Attendees {
		if att == nil || att.Self {
			continue
		}
		event.Attendees = append(event.Attendees, toAttendee(att))
	}

	return event, nil
}

// NormalizeAll normalizes a batch of raw events in order. Declined events
// are skipped; malformed records are reported through the joined error
// while the remaining records are still returned.
func NormalizeAll(raw []*gcal.Event) ([]Event, error) {
	var events []Event
	var errs []error

	for _, r := range raw {
		event, err := Normalize(r)
		if errors.Is(err, ErrDeclined) {
			continue
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		events = append(events, event)
	}

	return events, errors.Join(errs...)
}

// isDeclined reports whether the authenticated user appears in the
// attendee list with a declined response.
func isDeclined(raw *gcal.Event) bool {
	for _, att := range raw.Attendees {
		if att != nil && att.Self && att.ResponseStatus == "declined" {
			return true
		}
	}
	return false
}

// extractEndpoint picks the raw value of a start or end field, preferring
// the timestamp over the date-only form. The second return value is true
// when the date-only form was used.
func extractEndpoint(dt *gcal.EventDateTime) (string, bool, error) {
	if dt == nil {
		return "", false, errors.New("missing")
	}
	if dt.DateTime != "" {
		return dt.DateTime, false, nil
	}
	if dt.Date != "" {
		return dt.Date, true, nil
	}
	return "", false, errors.New("missing")
}

// parseEndpoint parses a raw endpoint value. A zero time is returned on
// parse failure; the renderer falls back to the raw value then.
func parseEndpoint(value string, allDay bool) time.Time {
	layout := time.RFC3339
	if allDay {
		layout = "2006-01-02"
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func toAttendee(att *gcal.EventAttendee) Attendee {
	a := Attendee{
		Email:          att.Email,
		DisplayName:    att.DisplayName,
		ResponseStatus: att.ResponseStatus,
	}
	if a.DisplayName == "" {
		a.DisplayName = a.Email
	}
	if a.ResponseStatus == "" {
		a.ResponseStatus = ResponseUnknown
	}
	return a
}
