package whatsapp

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name      string
		sid       string
		token     string
		from      string
		to        string
		wantErr   bool
		errString string
	}{
		{
			name:  "valid addresses",
			sid:   "AC123",
			token: "secret",
			from:  "whatsapp:+14155238886",
			to:    "whatsapp:+15551234567",
		},
		{
			name:      "missing credentials",
			from:      "whatsapp:+14155238886",
			to:        "whatsapp:+15551234567",
			wantErr:   true,
			errString: "cannot be empty",
		},
		{
			name:      "from without whatsapp prefix",
			sid:       "AC123",
			token:     "secret",
			from:      "+14155238886",
			to:        "whatsapp:+15551234567",
			wantErr:   true,
			errString: "from must be a whatsapp: address",
		},
		{
			name:      "to without whatsapp prefix",
			sid:       "AC123",
			token:     "secret",
			from:      "whatsapp:+14155238886",
			to:        "+15551234567",
			wantErr:   true,
			errString: "to must be a whatsapp: address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.sid, tt.token, tt.from, tt.to, false)

			if tt.wantErr {
				if err == nil {
					t.Errorf("NewClient() expected error containing %q, got nil", tt.errString)
				} else if !strings.Contains(err.Error(), tt.errString) {
					t.Errorf("NewClient() error = %v, want error containing %q", err, tt.errString)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewClient() unexpected error = %v", err)
			}
			if client.To() != tt.to {
				t.Errorf("To() = %v, want %v", client.To(), tt.to)
			}
		})
	}
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient("AC123", "secret", "whatsapp:+14155238886", "whatsapp:+15551234567", false)
	if err != nil {
		t.Fatal(err)
	}
	client.baseURL = srv.URL
	client.hc = srv.Client()
	return client
}

func TestSendMessage(t *testing.T) {
	var gotForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2010-04-01/Accounts/AC123/Messages.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if user, pass, ok := r.BasicAuth(); !ok || user != "AC123" || pass != "secret" {
			t.Error("missing or wrong basic auth")
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		gotForm = map[string]string{
			"From": r.PostForm.Get("From"),
			"To":   r.PostForm.Get("To"),
			"Body": r.PostForm.Get("Body"),
		}

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(messageResponse{Sid: "SM1", Status: "queued"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	if err := client.SendMessage("hello"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}

	if gotForm["From"] != "whatsapp:+14155238886" || gotForm["To"] != "whatsapp:+15551234567" {
		t.Errorf("unexpected form addresses: %v", gotForm)
	}
	if gotForm["Body"] != "hello" {
		t.Errorf("Body = %q, want %q", gotForm["Body"], "hello")
	}
}

func TestSendMessageTwilioError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(messageResponse{
			Code:    63003,
			Message: "not a valid WhatsApp recipient",
		})
	}))
	defer srv.Close()

	err := newTestClient(t, srv).SendMessage("hello")

	var deliveryErr *DeliveryError
	if !errors.As(err, &deliveryErr) {
		t.Fatalf("SendMessage() error = %v, want *DeliveryError", err)
	}
	if deliveryErr.Op != "send" {
		t.Errorf("Op = %q, want %q", deliveryErr.Op, "send")
	}
	if !strings.Contains(err.Error(), "63003") || !strings.Contains(err.Error(), "not a valid WhatsApp recipient") {
		t.Errorf("error missing Twilio detail: %v", err)
	}
}

func TestSendMessageEmpty(t *testing.T) {
	client, err := NewClient("AC123", "secret", "whatsapp:+14155238886", "whatsapp:+15551234567", false)
	if err != nil {
		t.Fatal(err)
	}

	if err := client.SendMessage(""); err == nil {
		t.Error("SendMessage(\"\") expected error, got nil")
	}
}

func TestSendMessageDryRun(t *testing.T) {
	client, err := NewClient("AC123", "secret", "whatsapp:+14155238886", "whatsapp:+15551234567", true)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	client.out = &buf
	// No server is configured: a dry run must never touch the network.
	client.baseURL = "http://127.0.0.1:0"

	if err := client.SendMessage("dry run body"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "DRY RUN") || !strings.Contains(out, "dry run body") {
		t.Errorf("dry run echo missing content: %q", out)
	}
}

func TestSendSummaryBounded(t *testing.T) {
	var gotBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		gotBody = r.PostForm.Get("Body")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(messageResponse{Sid: "SM1", Status: "queued"})
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	if err := client.SendSummary(strings.Repeat("a", 2*MessageLimit)); err != nil {
		t.Fatalf("SendSummary() error = %v", err)
	}

	if len(gotBody) > MessageLimit {
		t.Errorf("delivered body is %d bytes, exceeds the %d limit", len(gotBody), MessageLimit)
	}
	if !strings.HasPrefix(gotBody, Subject) {
		t.Errorf("delivered body missing subject prefix: %q", gotBody[:40])
	}
	if !strings.HasSuffix(gotBody, truncationMarker) {
		t.Error("delivered body missing truncation marker")
	}
}
