// Package mail sends the best-effort notification email that follows a
// contact-form submission. Delivery failure is reported as a value, never as
// a fault in the submitter's request path.
package mail

import (
	"context"

	"github.com/odionmurphy/Murphy-Portfolio/internal/config"
	"github.com/odionmurphy/Murphy-Portfolio/internal/logger"
)

// Outcome reports whether a notification was delivered. Error is set only
// when a configured transport actually failed; a disabled notifier reports
// Sent=false with no error.
type Outcome struct {
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

// Notifier attempts to deliver one notification to the operator address,
// with the submitter's address as Reply-To.
type Notifier interface {
	Notify(ctx context.Context, name, email, message string) Outcome
}

// FromConfig selects a transport from configuration: the Resend relay when an
// API key is set, SMTP when full credentials are set, otherwise disabled.
func FromConfig(cfg config.MailConfig, log *logger.Logger) Notifier {
	switch {
	case cfg.ResendAPIKey != "":
		log.Info("mail: using resend relay", "to", cfg.To)
		return NewResendNotifier(cfg, log)
	case cfg.SMTPHost != "" && cfg.SMTPUser != "" && cfg.SMTPPass != "":
		log.Info("mail: using smtp transport", "host", cfg.SMTPHost, "to", cfg.To)
		return NewSMTPNotifier(cfg, log)
	default:
		log.Warn("mail: no transport credentials configured, email disabled")
		return Disabled{}
	}
}
