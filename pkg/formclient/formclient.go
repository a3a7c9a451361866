// Package formclient implements the contact form's submission controller:
// field state, deferred validation and the submit lifecycle against the
// relay endpoint.
package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"contact-relay-backend/pkg/validation"
)

// Outcome is the submission lifecycle state shown to the user.
type Outcome int

const (
	OutcomeIdle Outcome = iota
	OutcomeSubmitting
	OutcomeSuccess
	OutcomeFailure
)

const (
	msgEmailInvalid    = "Please enter a valid email address"
	msgMessageRequired = "Message is required"
	// Provider detail never reaches the user; failures all read the same
	msgSubmitFailed = "Failed to send message. Please try again later."

	defaultClearAfter = 5 * time.Second
)

var (
	// ErrValidation is returned when field validation blocks the submit.
	// No network call has been made; FieldErrors holds the detail.
	ErrValidation = errors.New("formclient: validation failed")
	// ErrSubmitInFlight is returned when Submit is called while a prior
	// submission is still running.
	ErrSubmitInFlight = errors.New("formclient: submission already in flight")
	// ErrSubmitFailed is returned when the relay rejected the submission
	// or could not be reached.
	ErrSubmitFailed = errors.New("formclient: submit failed")
)

// FieldErrors holds per-field validation messages; empty string means the
// field passed.
type FieldErrors struct {
	Email   string
	Message string
}

// Values is a snapshot of the editable form fields.
type Values struct {
	Email   string
	Phone   string
	Message string
}

// Form owns the submission state machine. Safe for concurrent use; a
// second Submit while one is in flight is rejected rather than queued.
type Form struct {
	endpoint   string
	to         string
	client     *http.Client
	clearAfter time.Duration

	mu          sync.Mutex
	fields      Values
	fieldErrors FieldErrors
	outcome     Outcome
	submitting  bool
	clearTimer  *time.Timer
}

// Option customises a Form.
type Option func(*Form)

// WithHTTPClient overrides the HTTP client used for submissions.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Form) {
		if client != nil {
			f.client = client
		}
	}
}

// WithClearAfter overrides how long a Success/Failure banner stays before
// auto-clearing to Idle.
func WithClearAfter(d time.Duration) Option {
	return func(f *Form) {
		if d > 0 {
			f.clearAfter = d
		}
	}
}

// New creates a form controller posting to endpoint. to is the fixed,
// deployment-supplied destination embedded in every submission; it is not
// user input.
func New(endpoint, to string, opts ...Option) *Form {
	f := &Form{
		endpoint:   endpoint,
		to:         to,
		client:     &http.Client{},
		clearAfter: defaultClearAfter,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// UpdateField sets the named field verbatim. Validation is deferred to
// Submit, never run per keystroke.
func (f *Form) UpdateField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch name {
	case "email":
		f.fields.Email = value
	case "phone":
		f.fields.Phone = value
	case "message":
		f.fields.Message = value
	}
}

// Values returns a snapshot of the current field contents.
func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// FieldErrors returns the validation errors from the last Submit.
func (f *Form) FieldErrors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrors
}

// Outcome returns the current lifecycle state.
func (f *Form) Outcome() Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outcome
}

// Submitting reports whether a submission is currently in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// FailureMessage returns the user-facing failure copy while the outcome
// is Failure, otherwise "".
func (f *Form) FailureMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.outcome == OutcomeFailure {
		return msgSubmitFailed
	}
	return ""
}

type submissionRequest struct {
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	To      string `json:"to"`
}

// Submit validates the fields and, if they pass, issues exactly one POST
// to the relay. On a 2xx response the fields are cleared and the outcome
// becomes Success; any other response or a transport failure becomes
// Failure. Success and Failure auto-clear to Idle after the configured
// display window; a new resolution cancels a pending clear.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.submitting = true
	f.fieldErrors = FieldErrors{}
	f.outcome = OutcomeSubmitting
	snapshot := f.fields
	f.mu.Unlock()

	// Submitting must never stick, whichever path exits
	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	var errs FieldErrors
	blocked := false
	if !validation.ValidEmail(snapshot.Email) {
		errs.Email = msgEmailInvalid
		blocked = true
	}
	if strings.TrimSpace(snapshot.Message) == "" {
		errs.Message = msgMessageRequired
		blocked = true
	}
	if blocked {
		f.mu.Lock()
		f.fieldErrors = errs
		// No request was sent, so there is nothing to report: back to Idle
		f.outcome = OutcomeIdle
		f.mu.Unlock()
		return ErrValidation
	}

	payload, err := json.Marshal(submissionRequest{
		Email:   snapshot.Email,
		Phone:   snapshot.Phone,
		Message: snapshot.Message,
		To:      f.to,
	})
	if err != nil {
		f.resolve(OutcomeFailure)
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(payload))
	if err != nil {
		f.resolve(OutcomeFailure)
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.resolve(OutcomeFailure)
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.resolve(OutcomeFailure)
		return fmt.Errorf("%w: relay responded %d", ErrSubmitFailed, resp.StatusCode)
	}

	f.mu.Lock()
	f.fields = Values{}
	f.mu.Unlock()
	f.resolve(OutcomeSuccess)
	return nil
}

// resolve records a terminal outcome and (re)arms the auto-clear timer.
// An earlier pending clear is cancelled so it cannot wipe this banner
// prematurely.
func (f *Form) resolve(o Outcome) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcome = o
	if f.clearTimer != nil {
		f.clearTimer.Stop()
	}
	f.clearTimer = time.AfterFunc(f.clearAfter, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.outcome == OutcomeSuccess || f.outcome == OutcomeFailure {
			f.outcome = OutcomeIdle
		}
	})
}
