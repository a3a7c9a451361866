// Package mailer sends contact emails through one configured provider.
// Exactly one strategy is active per deployment; the choice is made at
// process start from configuration.
package mailer

import (
	"context"
	"fmt"
)

// Message is a normalized outbound email, independent of any provider's
// wire format.
type Message struct {
	From    string
	To      []string
	Subject string
	Text    string
	ReplyTo string
}

// Mailer is the transport strategy for one email provider. Send returns
// the provider-assigned message id when the provider surfaces one.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ProviderError reports a non-success response from the remote provider.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: provider responded %d: %s", e.Provider, e.StatusCode, e.Body)
}
