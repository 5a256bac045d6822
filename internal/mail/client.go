// Package mail delivers OTP email through a transactional mail HTTP API.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client sends OTP mail via the provider's JSON API.
type Client struct {
	APIKey     string
	BaseURL    string
	Sender     string
	HTTPClient *http.Client
}

// NewClient returns a client that uses the given API key, endpoint, and sender address.
func NewClient(apiKey, baseURL, sender string) *Client {
	if baseURL == "" {
		baseURL = "https://api.mailersend.com/v1/email"
	}
	if sender == "" {
		sender = "no-reply@jendo.health"
	}
	return &Client{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		Sender:     sender,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SendPasscode sends the passcode to the given email address. Does not log
// the passcode.
func (c *Client) SendPasscode(ctx context.Context, email, code string) error {
	if c.APIKey == "" {
		return fmt.Errorf("mail: API key not configured")
	}
	body := map[string]interface{}{
		"from":    map[string]string{"email": c.Sender},
		"to":      []map[string]string{{"email": email}},
		"subject": "Your Jendo verification code",
		"text":    fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code),
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail: request failed status=%d body=%s", resp.StatusCode, string(b))
	}
	return nil
}
