package mail

import "context"

// Disabled is the notifier used when no transport credentials are configured.
// Running without email is a valid steady state: every call reports a
// non-sent outcome without attempting network I/O.
type Disabled struct{}

var _ Notifier = Disabled{}

func (Disabled) Notify(ctx context.Context, name, email, message string) Outcome {
	return Outcome{Sent: false}
}
