package healthapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the health-records API that owns patients, daily logs
// and medication data. This service never writes those records; it only
// reads snapshots and triggers summary generation.
type Client struct {
	BaseURL    string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a new health-records API client
func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		BaseURL:    baseURL,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// StatusError is a non-2xx response from the upstream API. Callers use
// the code to tell "patient not found" apart from an upstream outage.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("health api error (status %d): %s", e.StatusCode, e.Body)
}

// Get performs a GET request against the upstream API. The user token,
// when present, is forwarded so the upstream enforces its own access
// rules; otherwise the service key is used.
func (c *Client) Get(ctx context.Context, path string, query map[string]string, userToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, value := range query {
		q.Add(key, value)
	}
	req.URL.RawQuery = q.Encode()

	c.authorize(req, userToken)

	return c.do(req)
}

// Post performs a POST request with a JSON body against the upstream API.
func (c *Client) Post(ctx context.Context, path string, data interface{}, userToken string) ([]byte, error) {
	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	c.authorize(req, userToken)

	return c.do(req)
}

func (c *Client) authorize(req *http.Request, userToken string) {
	// Use user token if provided, otherwise fall back to the service key
	if userToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", userToken))
	} else {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.ServiceKey))
	}
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// User represents an authenticated health-records API user
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// VerifyToken resolves a bearer token to its user via the upstream API
func (c *Client) VerifyToken(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/auth/me", nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("token verification failed (status %d): %s", resp.StatusCode, string(body))
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &user, nil
}
