// Package calendar fetches events from the Google Calendar API and
// normalizes them into the canonical Event form used by the rest of the
// pipeline.
//
// Raw provider records are heterogeneous: timed events carry RFC3339
// timestamps, all-day events carry date-only values, and most fields are
// optional. Normalize reconciles those shapes, drops events the
// authenticated user has declined, and applies fixed defaults for missing
// fields so downstream rendering is deterministic.
//
// Example usage:
//
//	client, err := calendar.NewClient(ctx, oauthConf, tokenPath, "primary")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	events, err := client.WeeklyEvents(time.Now())
package calendar
