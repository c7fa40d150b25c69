package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/odionmurphy/Murphy-Portfolio/internal/config"
	"github.com/odionmurphy/Murphy-Portfolio/internal/logger"
)

// SMTPNotifier delivers notifications over plain-auth SMTP.
type SMTPNotifier struct {
	host string
	port int
	user string
	pass string
	to   string
	log  *logger.Logger
}

var _ Notifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(cfg config.MailConfig, log *logger.Logger) *SMTPNotifier {
	return &SMTPNotifier{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		to:   cfg.To,
		log:  log,
	}
}

// Notify sends one notification email. The attempt is bounded by ctx: a
// stalled SMTP connection becomes a non-sent outcome, not a hung request.
func (n *SMTPNotifier) Notify(ctx context.Context, name, email, message string) Outcome {
	msg := buildMessage(n.to, n.user, email, name, message)
	auth := smtp.PlainAuth("", n.user, n.pass, n.host)
	addr := fmt.Sprintf("%s:%d", n.host, n.port)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, n.user, []string{n.to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			n.log.Error("mail: smtp send failed", "error", err)
			return Outcome{Sent: false, Error: err.Error()}
		}
		n.log.Info("mail: notification sent", "from", email)
		return Outcome{Sent: true}
	case <-ctx.Done():
		n.log.Error("mail: smtp send timed out", "error", ctx.Err())
		return Outcome{Sent: false, Error: ctx.Err().Error()}
	}
}

// buildMessage frames the notification with the submitter as Reply-To so the
// operator can answer directly from their inbox.
func buildMessage(to, from, replyTo, name, body string) []byte {
	subject := fmt.Sprintf("New contact from %s", name)
	text := fmt.Sprintf("%s <%s>\n\n%s", name, replyTo, body)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + replyTo + "\r\n" +
		"\r\n" +
		text + "\r\n")
}
