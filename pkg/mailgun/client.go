package mailgun

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-contact-relay/config"
	"go-contact-relay/pkg/logger"
)

// Message is a single mail to relay through Mailgun.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
}

// Sender delivers messages through a mail provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// APIError is a failure Mailgun itself reported: an auth rejection or
// an error body with a message in it.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mailgun responded %d: %s", e.StatusCode, e.Message)
}

// ErrUnexpectedResponse marks a non-2xx response whose body could not
// be interpreted as a Mailgun error.
var ErrUnexpectedResponse = errors.New("unexpected response from mail provider")

// Client sends messages via the Mailgun HTTP API.
type Client struct {
	messagesURL string
	authHeader  string
	httpClient  *http.Client
}

// NewClient creates a Mailgun client for the configured sending domain.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		messagesURL: fmt.Sprintf("%s/v3/%s/messages", cfg.APIBase, cfg.Domain),
		authHeader:  "Basic " + base64.StdEncoding.EncodeToString([]byte("api:"+cfg.APIKey)),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts the message to Mailgun's messages endpoint. It returns an
// *APIError when Mailgun rejected the message, ErrUnexpectedResponse
// when the rejection could not be parsed, and a plain wrapped error
// when the request never got a response.
func (c *Client) Send(ctx context.Context, msg Message) error {
	form := url.Values{}
	form.Set("from", msg.From)
	form.Set("to", msg.To)
	form.Set("subject", msg.Subject)
	form.Set("text", msg.Text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.messagesURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build Mailgun request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach Mailgun: %w", err)
	}
	defer resp.Body.Close()

	logger.Log.Info("Received Mailgun response", "status", resp.StatusCode)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return errorFromResponse(resp)
}

func errorFromResponse(resp *http.Response) error {
	// Mailgun answers auth failures with a plain text body rather than
	// its usual JSON error shape.
	if resp.StatusCode == http.StatusUnauthorized {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var errResp map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode)
	}

	msg, ok := errResp["message"].(string)
	if !ok {
		return fmt.Errorf("%w: status %d", ErrUnexpectedResponse, resp.StatusCode)
	}

	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
