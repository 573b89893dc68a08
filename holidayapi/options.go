package holidayapi

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	apiRoot    string
	logger     zerolog.Logger
	metrics    *Metrics
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout: DefaultTimeout,
		apiRoot: DefaultAPIRoot,
		logger:  zerolog.Nop(),
	}
}

// WithHTTPClient uses the given HTTP client for every request. The timeout
// option is ignored when a client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithAPIRoot points the client at a different scheme and host. The
// version segment is still appended, so "http://127.0.0.1:8080" yields
// "http://127.0.0.1:8080/v1/".
func WithAPIRoot(root string) Option {
	return func(o *clientOptions) {
		if root != "" {
			o.apiRoot = root
		}
	}
}

// WithLogger sets the logger used for request debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithMetrics records request counts and latencies on m.
func WithMetrics(m *Metrics) Option {
	return func(o *clientOptions) {
		o.metrics = m
	}
}
