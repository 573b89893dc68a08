package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultAPIRoot is the scheme and host of the public Holiday API
	DefaultAPIRoot = "https://holidayapi.com"
	// DefaultVersion is the API version used by New
	DefaultVersion = 1
	// DefaultTimeout is the HTTP timeout used when no client is supplied
	DefaultTimeout = 30 * time.Second
)

// Client is a Holiday API handle. It is immutable after construction and
// safe to share between goroutines and request builders.
type Client struct {
	baseURL    string
	version    int
	key        string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a client for the default API version.
func New(key string, opts ...Option) (*Client, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	return newClient(key, DefaultVersion, opts), nil
}

// NewWithVersion creates a client for a specific API version.
func NewWithVersion(key string, version int, opts ...Option) (*Client, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ValidateVersion(version); err != nil {
		return nil, err
	}
	return newClient(key, version, opts), nil
}

func newClient(key string, version int, opts []Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}
	if o.metrics != nil {
		// Copy so the caller's client is left untouched
		instrumented := *httpClient
		instrumented.Transport = o.metrics.instrument(httpClient.Transport)
		httpClient = &instrumented
	}

	return &Client{
		baseURL:    fmt.Sprintf("%s/v%d/", strings.TrimRight(o.apiRoot, "/"), version),
		version:    version,
		key:        key,
		userAgent:  o.userAgent,
		httpClient: httpClient,
		logger:     o.logger,
	}
}

// BaseURL returns the versioned URL every endpoint path is joined to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Version returns the API version the client targets.
func (c *Client) Version() int {
	return c.version
}

// Countries starts a countries request.
func (c *Client) Countries() CountriesRequest {
	return CountriesRequest{client: c}
}

// Holidays starts a holidays request for a country and year.
func (c *Client) Holidays(country string, year int) HolidaysRequest {
	return newHolidaysRequest(c, country, year)
}

// Workday starts a request for the date that is days working days after start.
func (c *Client) Workday(country, start string, days int) WorkdayRequest {
	return newWorkdayRequest(c, country, start, days)
}

// Workdays starts a request counting the working days between start and end.
func (c *Client) Workdays(country, start, end string) WorkdaysRequest {
	return newWorkdaysRequest(c, country, start, end)
}

// Languages starts a languages request.
func (c *Client) Languages() LanguagesRequest {
	return LanguagesRequest{client: c}
}

// Do issues the GET call for r and returns the body unchanged. A 2xx
// response is returned as is, even when the envelope carries an error field.
func (c *Client) Do(ctx context.Context, r Request) (string, error) {
	if c == nil {
		return "", fmt.Errorf("%w: %s", ErrNoClient, r.Endpoint())
	}
	body, err := c.doRequest(ctx, r.Endpoint(), r.Params())
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// doRequest performs the GET call and classifies the HTTP status
func (c *Client) doRequest(ctx context.Context, endpoint Endpoint, params Params) ([]byte, error) {
	reqURL := c.requestURL(endpoint, params, url.QueryEscape(c.key))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s request failed: %w", ErrTransport, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}

	c.logger.Debug().
		Str("endpoint", endpoint.String()).
		Str("url", c.requestURL(endpoint, params, "REDACTED")).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Holiday API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// requestURL composes {baseURL}{path}?key={key}&{params}
func (c *Client) requestURL(endpoint Endpoint, params Params, key string) string {
	var sb strings.Builder
	sb.WriteString(c.baseURL)
	sb.WriteString(endpoint.Path())
	sb.WriteString("?key=")
	sb.WriteString(key)
	if len(params) > 0 {
		sb.WriteByte('&')
		sb.WriteString(params.Values().Encode())
	}
	return sb.String()
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
		Body:       string(body),
	}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		apiErr.Message = envelope.Error
	}

	return apiErr
}
