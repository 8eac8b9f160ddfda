package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"
	"golang.org/x/oauth2"
)

type ClientOption func(client *Client)

// Client talks to the hub REST API on behalf of a signed-in user.
type Client struct {
	base       url.URL
	apiVersion string
	http       *http.Client
}

func NewClient(cfg *Config, opts ...ClientOption) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	client := &Client{
		base:       *base,
		apiVersion: cfg.APIVersion,
		http:       &http.Client{},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) ClientOption {
	return func(client *Client) {
		client.http = httpClient
	}
}

// BaseURL is the URL relative hub links are resolved against.
func (c *Client) BaseURL() *url.URL {
	u := c.base
	return &u
}

// ListAccountCharacterModels fetches one page of the token owner's character models.
// The raw response is returned so the caller can decide what a non-200 status means;
// the caller must close the body.
func (c *Client) ListAccountCharacterModels(ctx context.Context, token string, params ListParams) (*http.Response, error) {
	q, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("encode list params: %w", err)
	}

	reqURL := c.base.JoinPath(accountCharacterModelsPath)
	reqURL.RawQuery = q.Encode()

	slog.Debug("Listing account character models", "url", reqURL.String())

	return c.get(ctx, token, reqURL)
}

func (c *Client) get(ctx context.Context, token string, reqURL *url.URL) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, err
	}

	request.Header.Set("Accept", "application/json")
	if c.apiVersion != "" {
		request.Header.Set("X-Api-Version", c.apiVersion)
	}

	return c.authorized(token).Do(request)
}

// authorized wraps the configured transport so every request carries the bearer token.
func (c *Client) authorized(token string) *http.Client {
	hc := *c.http
	hc.Transport = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   c.http.Transport,
	}
	return &hc
}

// DecodeCollection reads a character model page from a success body.
// A missing data field decodes to an empty page.
func DecodeCollection(r io.Reader) (*CollectionResponse, error) {
	var resp CollectionResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if resp.Data == nil {
		resp.Data = []json.RawMessage{}
	}
	return &resp, nil
}
