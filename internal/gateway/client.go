// Package gateway provides the HTTP client for the messaging gateway's
// admin API: the status snapshot poll plus the channel actions (probe,
// WhatsApp QR login, logout). The dashboard core never talks to the network
// itself; everything goes through this client.
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"bridgemon/internal/snapshot"
)

const (
	// DefaultBaseURL is the default gateway admin endpoint.
	DefaultBaseURL = "http://127.0.0.1:8077/"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second

	// maxSnapshotBytes caps how much status payload we are willing to read.
	maxSnapshotBytes = 4 << 20
)

// Client talks to the gateway admin API.
type Client struct {
	baseURL     string
	bearerToken string
	httpClient  *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL sets the gateway base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		c.baseURL = u
	}
}

// WithToken sets the bearer token for authentication.
func WithToken(token string) Option {
	return func(c *Client) {
		c.bearerToken = token
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a gateway client. BRIDGEMON_URL and BRIDGEMON_TOKEN
// override the defaults; options override both.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}

	if u := os.Getenv("BRIDGEMON_URL"); u != "" {
		c.baseURL = u
	}
	if token := os.Getenv("BRIDGEMON_TOKEN"); token != "" {
		c.bearerToken = token
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured gateway endpoint.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchSnapshot polls the gateway status endpoint and decodes the payload.
func (c *Client) FetchSnapshot(ctx context.Context) (*snapshot.Snapshot, error) {
	data, err := c.get(ctx, "api/status")
	if err != nil {
		return nil, err
	}
	return snapshot.Decode(data, time.Now())
}

// FetchRaw polls the gateway status endpoint and returns the raw payload,
// for dumping and diffing.
func (c *Client) FetchRaw(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "api/status")
}

// Probe asks the gateway to run a connectivity probe for a channel. The
// result lands in a later snapshot; the call only kicks it off.
func (c *Client) Probe(ctx context.Context, channelKey string) error {
	return c.post(ctx, "api/channels/"+url.PathEscape(channelKey)+"/probe")
}

// StartQR asks the gateway to begin a WhatsApp QR login. The QR payload
// shows up in subsequent snapshots while the login is pending.
func (c *Client) StartQR(ctx context.Context) error {
	return c.post(ctx, "api/channels/whatsapp/qr")
}

// Logout unlinks the WhatsApp device.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "api/channels/whatsapp/logout")
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway: building request: %w", err)
	}
	c.auth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway: GET %s: unexpected status %s", path, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBytes))
	if err != nil {
		return nil, fmt.Errorf("gateway: reading response: %w", err)
	}
	return data, nil
}

func (c *Client) post(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("gateway: building request: %w", err)
	}
	c.auth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("gateway: POST %s: unexpected status %s", path, resp.Status)
	}
	return nil
}

func (c *Client) auth(req *http.Request) {
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}
	req.Header.Set("Accept", "application/json")
}
