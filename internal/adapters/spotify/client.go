package spotify

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ewilliams-labs/moodtunes/internal/core/ports"
)

const (
	DefaultBaseURL  = "https://api.spotify.com/v1"
	DefaultTokenURL = "https://accounts.spotify.com/api/token"
)

// Client is an HTTP client for the Spotify Web API using the client
// credentials flow.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	tokens       oauth2.TokenSource
	log          *zap.Logger
}

// compile-time interface assertion
var _ ports.PlaylistSearcher = (*Client)(nil)

// Option customises a Client.
type Option func(*options)

type options struct {
	baseURL    string
	tokenURL   string
	httpClient *http.Client
	log        *zap.Logger
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithTokenURL points the client at a different token endpoint.
func WithTokenURL(u string) Option {
	return func(o *options) { o.tokenURL = u }
}

// WithHTTPClient sets the client used for both token and API requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// NewClient constructs a new Spotify client. Empty credentials are accepted;
// Authorize reports them as ports.ErrMissingCredentials.
func NewClient(clientID, clientSecret string, opts ...Option) *Client {
	o := options{
		baseURL:    DefaultBaseURL,
		tokenURL:   DefaultTokenURL,
		httpClient: http.DefaultClient,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = http.DefaultClient
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}

	creds := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     o.tokenURL,
	}

	// The token source keeps this context for every refresh, so it only
	// carries the base HTTP client.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, o.httpClient)
	tokens := creds.TokenSource(tokenCtx)

	authed := oauth2.NewClient(tokenCtx, tokens)
	authed.Timeout = o.httpClient.Timeout

	return &Client{
		httpClient:   authed,
		baseURL:      strings.TrimRight(o.baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		tokens:       tokens,
		log:          o.log,
	}
}

// Authorize fetches (or reuses) an access token.
func (c *Client) Authorize(ctx context.Context) error {
	if c.clientID == "" || c.clientSecret == "" {
		return ports.ErrMissingCredentials
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("spotify adapter: %w", err)
	}
	if _, err := c.tokens.Token(); err != nil {
		return fmt.Errorf("spotify adapter: fetch token: %w", err)
	}
	return nil
}
