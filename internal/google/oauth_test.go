package google

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestOAuthConfig(t *testing.T) {
	conf := OAuthConfig("client-id", "client-secret")

	if conf.ClientID != "client-id" {
		t.Errorf("ClientID = %q, want %q", conf.ClientID, "client-id")
	}
	if len(conf.Scopes) != 1 || conf.Scopes[0] != CalendarScope {
		t.Errorf("Scopes = %v, want only the read-only calendar scope", conf.Scopes)
	}
}

func TestAuthURL(t *testing.T) {
	conf := OAuthConfig("client-id", "client-secret")
	url := AuthURL(conf)

	if !strings.Contains(url, "client-id") {
		t.Errorf("auth URL %q does not contain the client ID", url)
	}
	if !strings.Contains(url, "access_type=offline") {
		t.Errorf("auth URL %q does not request offline access", url)
	}
}

func TestSaveAndLoadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
	}

	if err := SaveToken(path, token); err != nil {
		t.Fatalf("SaveToken() error = %v", err)
	}

	if !HasToken(path) {
		t.Error("HasToken() = false after SaveToken")
	}

	loaded, err := LoadToken(path)
	if err != nil {
		t.Fatalf("LoadToken() error = %v", err)
	}
	if loaded.AccessToken != token.AccessToken {
		t.Errorf("AccessToken = %q, want %q", loaded.AccessToken, token.AccessToken)
	}
	if loaded.RefreshToken != token.RefreshToken {
		t.Errorf("RefreshToken = %q, want %q", loaded.RefreshToken, token.RefreshToken)
	}
}

func TestLoadTokenMissing(t *testing.T) {
	if _, err := LoadToken(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("LoadToken() expected error for missing file, got nil")
	}
}

func TestHasTokenMissing(t *testing.T) {
	if HasToken(filepath.Join(t.TempDir(), "nope.json")) {
		t.Error("HasToken() = true for missing file")
	}
}
