package whatsapp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const twilioBaseURL = "https://api.twilio.com"

// Client sends WhatsApp messages via the Twilio Messages API.
type Client struct {
	accountSID string
	authToken  string
	from       string
	to         string
	dryRun     bool

	baseURL string
	hc      *http.Client
	out     io.Writer // dry-run echo target
}

// NewClient creates a WhatsApp client for a fixed sender and recipient.
// When dryRun is true, SendMessage echoes the message to the console
// instead of calling Twilio, with an identical contract.
func NewClient(accountSID, authToken, from, to string, dryRun bool) (*Client, error) {
	if accountSID == "" || authToken == "" {
		return nil, fmt.Errorf("accountSID and authToken cannot be empty")
	}
	if !strings.HasPrefix(from, "whatsapp:") {
		return nil, fmt.Errorf("from must be a whatsapp: address (e.g. whatsapp:+14155238886)")
	}
	if !strings.HasPrefix(to, "whatsapp:") {
		return nil, fmt.Errorf("to must be a whatsapp: address (e.g. whatsapp:+15551234567)")
	}

	return &Client{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		to:         to,
		dryRun:     dryRun,
		baseURL:    twilioBaseURL,
		hc:         &http.Client{Timeout: 30 * time.Second},
		out:        os.Stdout,
	}, nil
}

// To returns the recipient address this client delivers to.
func (c *Client) To() string {
	return c.to
}

// SendSummary prefixes the subject line, enforces the message bounds and
// sends the result.
func (c *Client) SendSummary(summary string) error {
	formatted := Subject + "\n\n" + summary
	return c.SendMessage(Truncate(formatted, MessageLimit))
}

// SendMessage sends a single WhatsApp message body.
func (c *Client) SendMessage(message string) error {
	if message == "" {
		return &DeliveryError{Op: "send", To: c.to, Err: fmt.Errorf("message cannot be empty")}
	}

	if c.dryRun {
		fmt.Fprintf(c.out, "--- DRY RUN: message not sent ---\n")
		fmt.Fprintf(c.out, "From: %s\nTo: %s\n\n%s\n", c.from, c.to, message)
		fmt.Fprintf(c.out, "--- end of message (%d chars) ---\n", len(message))
		return nil
	}

	form := url.Values{}
	form.Set("From", c.from)
	form.Set("To", c.to)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return &DeliveryError{Op: "send", To: c.to, Err: err}
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.hc.Do(req)
	if err != nil {
		return &DeliveryError{Op: "send", To: c.to, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &DeliveryError{Op: "send", To: c.to, Err: err}
	}

	var decoded messageResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return &DeliveryError{Op: "send", To: c.to, Err: fmt.Errorf("invalid response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decoded.Message != "" {
			return &DeliveryError{
				Op:  "send",
				To:  c.to,
				Err: fmt.Errorf("Twilio error %d: %s", decoded.Code, decoded.Message),
			}
		}
		return &DeliveryError{Op: "send", To: c.to, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	return nil
}
