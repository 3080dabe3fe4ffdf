// Package push delivers composed notifications to a user's device, either
// over a live in-app websocket or through the external push HTTP API.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/termin-app/notify-service/internal/models"
)

// Sender performs a best-effort, at-most-one delivery attempt per call.
// Retry policy, if any, belongs to the caller; the dispatch pipeline
// deliberately has none.
type Sender interface {
	Send(ctx context.Context, address string, n models.NotificationPayload) error
}

// HTTPSender posts notifications to an FCM-style push endpoint.
type HTTPSender struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewHTTPSender(baseURL, apiKey string) *HTTPSender {
	return &HTTPSender{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type pushMessage struct {
	To           string            `json:"to"`
	Notification pushNotification  `json:"notification"`
	Data         map[string]string `json:"data"`
}

type pushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Send posts the payload for a single device token. A transport error or a
// non-2xx response is a delivery fault; the caller decides what that means.
func (s *HTTPSender) Send(ctx context.Context, address string, n models.NotificationPayload) error {
	body, err := json.Marshal(pushMessage{
		To:           address,
		Notification: pushNotification{Title: n.Title, Body: n.Body},
		Data:         n.Data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "key="+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push endpoint returned %s", resp.Status)
	}
	return nil
}
