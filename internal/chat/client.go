// Package chat relays prompts to a hosted AI chat API.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"
)

// MaxMessageLength is the longest accepted prompt, in characters.
const MaxMessageLength = 2000

// Validation and configuration errors. Their text is shown to the user.
var (
	ErrNotConfigured  = errors.New("Service temporarily unavailable")
	ErrEmptyMessage   = errors.New("Message cannot be empty")
	ErrMessageTooLong = errors.New("Message too long")
)

const msgNoReply = "Failed to get AI response"

// ReplyError means the API answered without a usable reply.
type ReplyError struct {
	Message string
}

func (e *ReplyError) Error() string {
	return e.Message
}

// Client calls the chat API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a Client. An empty apiKey leaves it unconfigured.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// ValidateMessage checks the prompt length.
func ValidateMessage(message string) error {
	n := utf8.RuneCountInString(message)
	if n == 0 {
		return ErrEmptyMessage
	}
	if n > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// Ask sends message and returns the assistant's reply.
func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	if err := ValidateMessage(message); err != nil {
		return "", err
	}

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse chat api url: %w", err)
	}
	q := endpoint.Query()
	q.Set("apikey", c.apiKey)
	q.Set("prompt", message)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call chat api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	return ExtractReply(resp.StatusCode, body)
}

// ExtractReply picks the reply out of a chat API body. The API has shipped
// several reply shapes; they are tried in a fixed order. The body is
// inspected whatever the HTTP status, except that a bare message only counts
// as a reply on a 2xx.
func ExtractReply(status int, body []byte) (string, error) {
	var data map[string]json.RawMessage
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}

	ok := status >= 200 && status <= 299

	var result map[string]json.RawMessage
	if raw, found := data["result"]; found && isObject(raw) {
		_ = json.Unmarshal(raw, &result)
	}

	candidates := []func() string{
		func() string {
			if truthy(data["status"]) {
				return str(data["result"])
			}
			return ""
		},
		func() string {
			if truthy(data["success"]) {
				return str(data["data"])
			}
			return ""
		},
		func() string { return str(data["response"]) },
		func() string {
			if ok && !truthy(data["error"]) {
				return str(data["message"])
			}
			return ""
		},
		func() string { return str(result["text"]) },
		func() string { return str(result["response"]) },
		func() string { return str(data["result"]) },
	}

	for _, candidate := range candidates {
		if reply := candidate(); reply != "" {
			return reply, nil
		}
	}

	msg := str(data["message"])
	if msg == "" {
		msg = str(data["error"])
	}
	if msg == "" {
		msg = msgNoReply
	}
	return "", &ReplyError{Message: msg}
}

func str(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// truthy follows JavaScript truthiness for a JSON value.
func truthy(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	switch string(v) {
	case "", "null", "false", "0", `""`:
		return false
	}
	var f float64
	if err := json.Unmarshal(v, &f); err == nil {
		return f != 0
	}
	return true
}

func isObject(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	return len(v) > 0 && v[0] == '{'
}
