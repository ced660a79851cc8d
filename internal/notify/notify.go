// Package notify delivers Slack webhook notifications for tooling hooks.
//
// Construction fails when the webhook is not configured; delivery failures
// are returned as errors. Callers on hook paths discard both, since a
// broken notification must never disrupt the operation being notified
// about.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/savi-dev/savi/internal/output"
)

// Environment variables that configure the sender.
const (
	EnvWebhookURL = "SLACK_WEBHOOK_URL"
	EnvMemberID   = "SLACK_MEMBER_ID"
)

// HTTPDoer defines the HTTP operations required by Notifier.
// This allows injection of test doubles for testing.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Notifier sends Block Kit messages to a Slack incoming webhook.
type Notifier struct {
	webhookURL string
	memberID   string
	httpClient HTTPDoer
}

// Field is one name/value entry in a notification. Fields render in the
// order given, which is why this is a slice element and not a map entry.
type Field struct {
	Name  string
	Value string
}

// New creates a Notifier from the environment.
// Both the webhook URL and the member ID must be set.
func New() (*Notifier, error) {
	webhookURL := os.Getenv(EnvWebhookURL)
	if webhookURL == "" {
		return nil, output.NewUserError(EnvWebhookURL + " environment variable not set")
	}

	memberID := os.Getenv(EnvMemberID)
	if memberID == "" {
		return nil, output.NewUserError(EnvMemberID + " environment variable not set")
	}

	return &Notifier{
		webhookURL: webhookURL,
		memberID:   memberID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// NewWithClient creates a Notifier with explicit configuration and an
// injected HTTP client (for testing).
func NewWithClient(webhookURL, memberID string, client HTTPDoer) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		memberID:   memberID,
		httpClient: client,
	}
}

// MemberID returns the configured Slack member ID.
func (n *Notifier) MemberID() string {
	return n.memberID
}

// Slack Block Kit payload types.
type message struct {
	Blocks []block `json:"blocks"`
}

type block struct {
	Type   string       `json:"type"`
	Text   *textObject  `json:"text,omitempty"`
	Fields []textObject `json:"fields,omitempty"`
}

type textObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// buildMessage assembles a header block and a field-section block.
func buildMessage(title string, fields []Field) message {
	fieldObjects := make([]textObject, 0, len(fields))
	for _, f := range fields {
		fieldObjects = append(fieldObjects, textObject{
			Type: "mrkdwn",
			Text: fmt.Sprintf("*%s:*\n%s", f.Name, f.Value),
		})
	}

	return message{
		Blocks: []block{
			{Type: "header", Text: &textObject{Type: "plain_text", Text: title}},
			{Type: "section", Fields: fieldObjects},
		},
	}
}

// Send delivers a single notification as one synchronous POST.
// A non-200 response or transport failure comes back as an error; callers
// on hook paths are expected to discard it.
func (n *Notifier) Send(ctx context.Context, title string, fields []Field) error {
	body, err := json.Marshal(buildMessage(title, fields))
	if err != nil {
		return output.NewSystemErrorWithCause("failed to marshal notification", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return output.NewSystemErrorWithCause("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return output.NewSystemErrorWithCause("webhook request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return output.NewSystemError(fmt.Sprintf("webhook returned status %d", resp.StatusCode))
	}

	return nil
}
