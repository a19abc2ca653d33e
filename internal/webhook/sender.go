// Package webhook delivers domain events to an external endpoint as
// signed HTTP POST requests.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"teamstack/internal/queue"
)

// Signature headers set on every delivery.
const (
	SignatureHeader = "X-Webhook-Signature"
	EventHeader     = "X-Webhook-Event"
)

// Sender posts events to a webhook URL, signing each body with
// HMAC-SHA256 so receivers can verify origin.
type Sender struct {
	url        string
	secret     []byte
	httpClient *http.Client
}

// NewSender creates a Sender for the given endpoint.
func NewSender(url, secret string, timeout time.Duration) *Sender {
	return &Sender{
		url:    url,
		secret: []byte(secret),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Sign returns the hex-encoded HMAC-SHA256 of the body.
func (s *Sender) Sign(body []byte) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Deliver posts the event to the webhook endpoint.
func (s *Sender) Deliver(ctx context.Context, event queue.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, s.Sign(body))
	req.Header.Set(EventHeader, event.Type)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}

	return nil
}

// Ensure Sender implements queue.Deliverer
var _ queue.Deliverer = (*Sender)(nil)
