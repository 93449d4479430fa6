package client

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type Option func(*Options)

type Options struct {
	baseURL        string
	requestLogger  RequestLogger
	requestHeaders map[string]string
	transport      http.RoundTripper
	environ        Environ
}

func newClientOptions() *Options {
	return &Options{
		baseURL:       DefaultBaseURL,
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithBaseURL overrides the default API base URL. Empty values are ignored;
// a trailing slash is trimmed so endpoint paths can be appended directly.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimSpace(baseURL)

		if baseURL != "" {
			o.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a header to every outgoing request. Content-Type,
// Accept, User-Agent, and the auth-token header are protected and cannot be
// overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, "User-Agent") ||
			strings.EqualFold(header, authTokenHeader) {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithTransport replaces the default proxy-aware transport. Nil values are
// ignored.
func WithTransport(transport http.RoundTripper) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

// WithEnviron pins proxy resolution to a fixed environment snapshot instead
// of reading the process environment on every request. Supply an empty
// [Environ] to force direct connections regardless of process proxy settings.
func WithEnviron(env Environ) Option {
	return func(o *Options) {
		if env != nil {
			o.environ = env
		}
	}
}

func (o *Options) Validate() error {
	if o.baseURL == "" {
		return errors.New("base URL must be set")
	}

	if u, err := url.Parse(o.baseURL); err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("base URL %q must be an absolute http(s) URL", o.baseURL)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	return nil
}
