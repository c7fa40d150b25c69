package service

import (
	"context"
	"errors"

	"github.com/odionmurphy/Murphy-Portfolio/internal/mail"
	"github.com/odionmurphy/Murphy-Portfolio/internal/model"
)

var (
	// ErrMissingFields reports a submission with an absent or empty
	// name, email or message. Nothing is persisted.
	ErrMissingFields = errors.New("missing required fields")

	// ErrUnauthorized reports an absent or incorrect admin credential.
	ErrUnauthorized = errors.New("unauthorized")
)

// SubmitInput is a contact-form submission before validation.
type SubmitInput struct {
	Name    string
	Email   string
	Message string
}

// SubmitResult reports a durable submission plus the independent outcome of
// the notification attempt, so a saved-but-unemailed message is visible.
type SubmitResult struct {
	ID   int64
	Mail mail.Outcome
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates the input, persists exactly one message and then makes
	// one best-effort notification attempt. Notification failure never fails
	// the submission: the row is already durable when the notifier runs.
	Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error)

	// List returns every stored message, newest id first, if credential
	// matches the configured admin token.
	List(ctx context.Context, credential string) ([]*model.ContactMessage, error)
}
