// Package recognizer talks to the face recognition service that backs the
// clock-in terminal. The service owns the camera and the trained model; this
// client only fetches frames and asks it who is in front of the lens.
package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client is a client for the face recognition service.
type Client struct {
	parsedURL *url.URL
}

// NewClient creates a client for the recognition service at baseURL.
func NewClient(baseURL string) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse recognizer URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("recognizer URL must be absolute, got %q", baseURL)
	}
	return &Client{parsedURL: parsed}, nil
}

func (c *Client) resolveURL(pathSegments ...string) string {
	return c.parsedURL.JoinPath(pathSegments...).String()
}

// Snapshot grabs the current camera frame as JPEG bytes.
func (c *Client) Snapshot(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolveURL("snapshot"), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	return body, nil
}

// Recognition is the service's verdict for one frame. ID refers to a row in
// the users table; a negative confidence means nobody was recognized.
type Recognition struct {
	ID         int64   `json:"id"`
	Confidence float64 `json:"confidence"`
}

// Recognize submits a JPEG frame and returns the recognition verdict.
func (c *Client) Recognize(ctx context.Context, frame []byte) (*Recognition, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolveURL("recognize"), bytes.NewReader(frame))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "image/jpeg")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	var result Recognition
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("could not unmarshal response: %w", err)
	}
	return &result, nil
}

func readErrorBody(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 512))
	if err != nil {
		return "unable to read error body"
	}
	return string(data)
}
