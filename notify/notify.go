package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"

	"github.com/moyoez/portfolio-resolver/tool"
	"github.com/moyoez/portfolio-resolver/types"
)

const EventResolveFailed = "resolve_failed"

// Notification represents a notification message structure
type Notification struct {
	Type    string         `json:"type,omitempty"`
	Title   string         `json:"title,omitempty"`
	Message string         `json:"message,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// Notifier posts notifications to a webhook. A Notifier without URL drops
// everything it is given.
type Notifier struct {
	url     string
	headers map[string]string
	client  *http.Client
}

func New(webhookURL string, client *http.Client) (*Notifier, error) {
	if webhookURL != "" {
		parsed, err := url.Parse(webhookURL)
		if err != nil {
			return nil, fmt.Errorf("invalid notification URL: %w", err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return nil, fmt.Errorf("notification URL must be http or https, got %q", parsed.Scheme)
		}
	}
	if client == nil {
		client = tool.NewHTTPClient(0)
	}
	return &Notifier{url: webhookURL, client: client, headers: map[string]string{}}, nil
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.url != ""
}

// SetHeader adds a header sent with every notification.
func (n *Notifier) SetHeader(key, value string) {
	n.headers[key] = value
}

// Send posts notification as JSON. A nil notification sends an empty object.
func (n *Notifier) Send(ctx context.Context, notification *Notification) error {
	if !n.Enabled() {
		return nil
	}
	payload := []byte("{}")
	if notification != nil {
		var err error
		payload, err = sonic.Marshal(notification)
		if err != nil {
			return fmt.Errorf("failed to serialize notification data: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range n.headers {
		req.Header.Set(key, value)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if readErr != nil {
		tool.DefaultLogger.Debugf("failed to read notification response body: %v", readErr)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification send failed, HTTP status code: %d, response: %s", resp.StatusCode, string(body))
	}

	if notification != nil {
		tool.DefaultLogger.Infof("notification successfully sent to %s: %s - %s", n.url, notification.Type, notification.Title)
	}
	return nil
}

// ResolveFailed builds the notification for a failed category lookup.
func ResolveFailed(category types.Category, requestID string, cause error) *Notification {
	reason := "unknown error"
	if cause != nil {
		reason = cause.Error()
	}
	return &Notification{
		Type:    EventResolveFailed,
		Title:   "Portfolio File Unavailable",
		Message: fmt.Sprintf("Failed to load %s from GitHub", category),
		Data: map[string]any{
			"category":  string(category),
			"requestId": requestID,
			"error":     reason,
		},
	}
}
