package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"calsum/internal/google"
)

// Fetch windows for the two summary views.
const (
	WeeklyWindow  = 7 * 24 * time.Hour
	MonthlyWindow = 30 * 24 * time.Hour
)

// Client wraps the Google Calendar service for a single calendar.
type Client struct {
	svc        *gcal.Service
	calendarID string
}

// NewClient creates a Calendar client authenticated with the cached OAuth
// token at tokenPath.
func NewClient(ctx context.Context, conf *oauth2.Config, tokenPath, calendarID string) (*Client, error) {
	ts, err := google.TokenSource(ctx, conf, tokenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token: %w", err)
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:        svc,
		calendarID: calendarID,
	}, nil
}

// CalendarID returns the calendar this client reads from.
func (c *Client) CalendarID() string {
	return c.calendarID
}

// FetchRaw lists raw events in the given time range, with recurring
// events expanded and results ordered by start time. The ordering is the
// upstream contract the summary builder relies on.
func (c *Client) FetchRaw(timeMin, timeMax time.Time) ([]*gcal.Event, error) {
	events, err := c.svc.Events.List(c.calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events.Items, nil
}

// FetchWindow fetches and normalizes events between timeMin and timeMax.
// Declined events are dropped. Malformed records are reported through the
// returned error while the well-formed remainder is still returned.
func (c *Client) FetchWindow(timeMin, timeMax time.Time) ([]Event, error) {
	raw, err := c.FetchRaw(timeMin, timeMax)
	if err != nil {
		return nil, err
	}
	return NormalizeAll(raw)
}

// WeeklyEvents returns normalized events for the next 7 days.
func (c *Client) WeeklyEvents(now time.Time) ([]Event, error) {
	return c.FetchWindow(now, now.Add(WeeklyWindow))
}

// MonthlyEvents returns normalized events for the next 30 days.
func (c *Client) MonthlyEvents(now time.Time) ([]Event, error) {
	return c.FetchWindow(now, now.Add(MonthlyWindow))
}
