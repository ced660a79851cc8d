package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// fakeDoer records the last request and returns a canned response.
type fakeDoer struct {
	status  int
	err     error
	request *http.Request
	body    []byte
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.request = req
	if req.Body != nil {
		f.body, _ = io.ReadAll(req.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &http.Response{
		StatusCode: f.status,
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}, nil
}

func TestNew_MissingConfig(t *testing.T) {
	tests := []struct {
		name    string
		webhook string
		member  string
		missing string
	}{
		{"no webhook", "", "U123", EnvWebhookURL},
		{"no member", "https://hooks.slack.test/x", "", EnvMemberID},
		{"neither", "", "", EnvWebhookURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvWebhookURL, tt.webhook)
			t.Setenv(EnvMemberID, tt.member)

			_, err := New()
			if err == nil {
				t.Fatal("expected configuration error")
			}
			if !strings.Contains(err.Error(), tt.missing) {
				t.Errorf("error %q does not name %s", err, tt.missing)
			}
		})
	}
}

func TestSend_PayloadShape(t *testing.T) {
	doer := &fakeDoer{status: http.StatusOK}
	n := NewWithClient("https://hooks.slack.test/x", "U123", doer)

	fields := []Field{
		{Name: "Duration", Value: "1m 30s"},
		{Name: "Project", Value: "savi"},
	}
	if err := n.Send(context.Background(), "Long Bash Operation", fields); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if got := doer.request.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if doer.request.Method != http.MethodPost {
		t.Errorf("method = %q, want POST", doer.request.Method)
	}

	var payload struct {
		Blocks []struct {
			Type string `json:"type"`
			Text *struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"text"`
			Fields []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"fields"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal(doer.body, &payload); err != nil {
		t.Fatalf("request body is not JSON: %v\nBody: %s", err, doer.body)
	}

	if len(payload.Blocks) != 2 {
		t.Fatalf("blocks = %d, want 2 (header + section)", len(payload.Blocks))
	}

	header := payload.Blocks[0]
	if header.Type != "header" || header.Text == nil || header.Text.Type != "plain_text" {
		t.Errorf("first block = %+v, want a plain_text header", header)
	}
	if header.Text.Text != "Long Bash Operation" {
		t.Errorf("title = %q, want %q", header.Text.Text, "Long Bash Operation")
	}

	section := payload.Blocks[1]
	if section.Type != "section" {
		t.Errorf("second block type = %q, want section", section.Type)
	}
	if len(section.Fields) != 2 {
		t.Fatalf("section fields = %d, want 2", len(section.Fields))
	}
	// Field order must follow the input order.
	if !strings.HasPrefix(section.Fields[0].Text, "*Duration:*\n") {
		t.Errorf("first field = %q, want Duration first", section.Fields[0].Text)
	}
	if section.Fields[1].Text != "*Project:*\nsavi" {
		t.Errorf("second field = %q, want %q", section.Fields[1].Text, "*Project:*\nsavi")
	}
	if section.Fields[0].Type != "mrkdwn" {
		t.Errorf("field type = %q, want mrkdwn", section.Fields[0].Type)
	}
}

func TestSend_Non200(t *testing.T) {
	doer := &fakeDoer{status: http.StatusInternalServerError}
	n := NewWithClient("https://hooks.slack.test/x", "U123", doer)

	err := n.Send(context.Background(), "Title", nil)
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("error %q does not mention the status code", err)
	}
}

func TestSend_TransportError(t *testing.T) {
	doer := &fakeDoer{err: errors.New("connection refused")}
	n := NewWithClient("https://hooks.slack.test/x", "U123", doer)

	if err := n.Send(context.Background(), "Title", nil); err == nil {
		t.Fatal("expected error for transport failure")
	}
}

func TestCannedHooks_SwallowMissingConfig(t *testing.T) {
	t.Setenv(EnvWebhookURL, "")
	t.Setenv(EnvMemberID, "")

	// Must not panic, block, or return anything.
	ctx := context.Background()
	Waiting(ctx)
	Stopped(ctx)
	LongOperation(ctx, 120, "Bash")
}

func TestCannedHooks_SendWhenConfigured(t *testing.T) {
	var posts atomic.Int32
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		posts.Add(1)
		body, _ = io.ReadAll(r.Body)
	}))
	defer srv.Close()

	t.Setenv(EnvWebhookURL, srv.URL)
	t.Setenv(EnvMemberID, "U123")

	LongOperation(context.Background(), 120, "Bash")

	if got := posts.Load(); got != 1 {
		t.Fatalf("webhook POSTs = %d, want 1", got)
	}
	payload := string(body)
	for _, want := range []string{"Long Bash Operation", "2m 0s", "<@U123>", "Project"} {
		if !strings.Contains(payload, want) {
			t.Errorf("payload missing %q:\n%s", want, payload)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0m 0s"},
		{29, "0m 29s"},
		{60, "1m 0s"},
		{90, "1m 30s"},
		{3601, "60m 1s"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
