package domain

import (
	"context"
	"errors"
)

// ContactRequest is the wire payload posted by the contact form.
// To is the form-embedded destination inbox, not user input.
type ContactRequest struct {
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
	To      string `json:"to" binding:"required"`
}

// ErrMissingFields signals that a required field was empty after trimming.
// The handler maps it to the fixed 400 response.
var ErrMissingFields = errors.New("missing required fields")

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and relays it to the
	// configured mail provider, returning the provider message id if any.
	SendContactMessage(ctx context.Context, req *ContactRequest) (string, error)
}
