package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hostpatrol/hostpatrol/pkg/clock"
)

// timestampLayout is the header format, e.g. "02/Feb/23 15:04 UTC".
const timestampLayout = "02/Jan/06 15:04 MST"

// SlackConfig configures the Slack webhook notifier.
type SlackConfig struct {
	// WebhookURL is the incoming-webhook endpoint. Required.
	WebhookURL string

	// Timeout for webhook requests. Defaults to 30s.
	Timeout time.Duration

	// Mention is prepended when the body contains a failure glyph,
	// so the channel gets pinged. Defaults to "@all".
	Mention string

	// Clock supplies the timestamp header. Defaults to real time.
	Clock clock.Clock
}

// slackMessage is the payload posted to the webhook.
type slackMessage struct {
	Text string `json:"text"`
}

// Slack delivers reports to a Slack-compatible incoming webhook.
type Slack struct {
	config SlackConfig
	client *http.Client
	logger *slog.Logger
}

// NewSlack creates a Slack webhook notifier.
func NewSlack(config SlackConfig, logger *slog.Logger) (*Slack, error) {
	if config.WebhookURL == "" {
		return nil, fmt.Errorf("webhook URL is required")
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Mention == "" {
		config.Mention = "@all"
	}
	if config.Clock == nil {
		config.Clock = clock.Real()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Slack{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}, nil
}

// Send posts the report body. A timestamp header is prepended, and
// when the body carries a failure glyph the configured mention is
// added so the channel is alerted.
func (s *Slack) Send(ctx context.Context, body string) error {
	text := s.config.Clock.Now().Format(timestampLayout) + "\n" + body
	if strings.Contains(body, "❌") {
		text = s.config.Mention + "\n" + text
	}

	payload, err := json.Marshal(slackMessage{Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, string(respBody))
	}

	s.logger.Info("report delivered",
		slog.Int("bytes", len(body)),
	)
	return nil
}

var _ Notifier = (*Slack)(nil)
