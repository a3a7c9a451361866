package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseBytes caps how much of a provider response is retained for
// logging and error reporting.
const maxResponseBytes = 4 << 10

// Mailgun sends messages through the Mailgun HTTP API: Basic auth with a
// static API key, form-encoded body, domain-scoped endpoint.
type Mailgun struct {
	apiKey  string
	domain  string
	apiBase string
	client  *http.Client
}

// NewMailgun creates a Mailgun strategy. apiBase is normally
// "https://api.mailgun.net/v3" and overridable for tests and EU hosting.
func NewMailgun(apiKey, domain, apiBase string) *Mailgun {
	return &Mailgun{
		apiKey:  apiKey,
		domain:  domain,
		apiBase: strings.TrimRight(apiBase, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Send posts the message to <apiBase>/<domain>/messages and returns the
// Mailgun queue id on acceptance.
func (m *Mailgun) Send(ctx context.Context, msg Message) (string, error) {
	form := url.Values{}
	form.Set("from", msg.From)
	for _, to := range msg.To {
		form.Add("to", to)
	}
	form.Set("subject", msg.Subject)
	form.Set("text", msg.Text)
	if msg.ReplyTo != "" {
		form.Set("h:Reply-To", msg.ReplyTo)
	}

	endpoint := fmt.Sprintf("%s/%s/messages", m.apiBase, m.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("mailgun: build request: %w", err)
	}
	req.SetBasicAuth("api", m.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("mailgun: send: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{
			Provider:   "mailgun",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	// Mailgun answers {"id": "<...>", "message": "Queued. Thank you."}
	var accepted struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &accepted); err != nil {
		// Accepted but unparseable body; the send still succeeded
		return "", nil
	}
	return accepted.ID, nil
}
