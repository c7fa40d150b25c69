package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/odionmurphy/Murphy-Portfolio/internal/config"
	"github.com/odionmurphy/Murphy-Portfolio/internal/logger"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendNotifier delivers notifications through the Resend REST API.
type ResendNotifier struct {
	apiKey   string
	to       string
	from     string
	endpoint string
	client   *http.Client
	log      *logger.Logger
}

var _ Notifier = (*ResendNotifier)(nil)

func NewResendNotifier(cfg config.MailConfig, log *logger.Logger) *ResendNotifier {
	return &ResendNotifier{
		apiKey:   cfg.ResendAPIKey,
		to:       cfg.To,
		from:     cfg.From,
		endpoint: resendEndpoint,
		client:   &http.Client{},
		log:      log,
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Notify posts one email to the relay. Any transport or API error becomes a
// non-sent outcome; the submission it follows is already durable.
func (n *ResendNotifier) Notify(ctx context.Context, name, email, message string) Outcome {
	payload := resendRequest{
		From:    n.from,
		To:      []string{n.to},
		ReplyTo: email,
		Subject: fmt.Sprintf("New contact from %s", name),
		Text:    fmt.Sprintf("%s <%s>\n\n%s", name, email, message),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Outcome{Sent: false, Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return Outcome{Sent: false, Error: err.Error()}
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.log.Error("mail: resend request failed", "error", err)
		return Outcome{Sent: false, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("resend: status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
		n.log.Error("mail: resend rejected message", "error", err)
		return Outcome{Sent: false, Error: err.Error()}
	}

	n.log.Info("mail: notification sent", "from", email)
	return Outcome{Sent: true}
}
