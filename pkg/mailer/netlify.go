package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Netlify sends messages through the Netlify Emails integration: Bearer
// token auth, JSON body, site-scoped endpoint.
type Netlify struct {
	token   string
	siteURL string
	client  *http.Client
}

// NewNetlify creates a Netlify strategy. siteURL is the deployed site
// origin, e.g. "https://howapped.netlify.app".
func NewNetlify(token, siteURL string) *Netlify {
	return &Netlify{
		token:   token,
		siteURL: strings.TrimRight(siteURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type netlifyPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Send posts the message to the site's emails function endpoint.
func (n *Netlify) Send(ctx context.Context, msg Message) (string, error) {
	payload, err := json.Marshal(netlifyPayload{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
	})
	if err != nil {
		return "", fmt.Errorf("netlify: encode payload: %w", err)
	}

	endpoint := n.siteURL + "/.netlify/functions/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("netlify: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("netlify: send: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ProviderError{
			Provider:   "netlify",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var accepted struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &accepted); err != nil {
		return "", nil
	}
	return accepted.ID, nil
}
