package google

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// CalendarScope is the only scope this application requests. Read-only
// access is enough to fetch events for summarization.
const CalendarScope = "https://www.googleapis.com/auth/calendar.readonly"

// OAuthConfig returns the OAuth2 configuration for the Calendar API.
// The out-of-band redirect keeps the flow usable from a terminal.
func OAuthConfig(clientID, clientSecret string) *oauth2.Config {
	const oob = "urn:ietf:wg:oauth:2.0:oob"
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  oob,
		Scopes:       []string{CalendarScope},
	}
}

// AuthURL returns the URL the user has to visit to authorize access.
func AuthURL(conf *oauth2.Config) string {
	return conf.AuthCodeURL("state", oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token.
func Exchange(ctx context.Context, conf *oauth2.Config, authCode string) (*oauth2.Token, error) {
	token, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange auth code: %w", err)
	}
	return token, nil
}

// SaveToken writes a token to the cache file with owner-only permissions.
func SaveToken(path string, token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// LoadToken reads a cached token from disk.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no Google OAuth token found at %s: %w", path, err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid token file %s: %w", path, err)
	}
	return &token, nil
}

// HasToken reports whether a token cache file exists at path.
func HasToken(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// TokenSource returns a token source backed by the cached token.
// The cached token is validated (and refreshed when expired) up front;
// a refreshed token is written back to the cache for the next run.
func TokenSource(ctx context.Context, conf *oauth2.Config, path string) (oauth2.TokenSource, error) {
	cached, err := LoadToken(path)
	if err != nil {
		return nil, err
	}

	ts := conf.TokenSource(ctx, cached)
	fresh, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("cached token is invalid, re-run the auth command: %w", err)
	}

	if fresh.AccessToken != cached.AccessToken {
		if err := SaveToken(path, fresh); err != nil {
			return nil, err
		}
	}

	return ts, nil
}
