package client

import (
	"net/http"
	"strings"
	"testing"
)

func TestNewClientOptions(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()

	if opts.baseURL != DefaultBaseURL {
		t.Errorf("expected baseURL=%s, got %s", DefaultBaseURL, opts.baseURL)
	}

	if opts.requestLogger == nil {
		t.Error("expected requestLogger to be set")
	}

	if opts.requestHeaders["Content-Type"] != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", opts.requestHeaders["Content-Type"])
	}

	if opts.requestHeaders["Accept"] != "application/json" {
		t.Errorf("expected Accept=application/json, got %s", opts.requestHeaders["Accept"])
	}

	if opts.transport != nil {
		t.Error("expected no transport override by default")
	}

	if opts.environ != nil {
		t.Error("expected live environment snapshots by default")
	}
}

func TestWithBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"valid", "http://example.com/bot", "http://example.com/bot"},
		{"trailing slash trimmed", "http://example.com/bot/", "http://example.com/bot"},
		{"empty ignored", "", DefaultBaseURL},
		{"whitespace ignored", "   ", DefaultBaseURL},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithBaseURL(tt.input)(opts)

			if opts.baseURL != tt.expected {
				t.Errorf("expected baseURL=%s, got %s", tt.expected, opts.baseURL)
			}
		})
	}
}

func TestWithRequestLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid logger", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		logger := &NoopLogger{}
		WithRequestLogger(logger)(opts)

		if opts.requestLogger != logger {
			t.Error("expected requestLogger to be set")
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		originalLogger := opts.requestLogger
		WithRequestLogger(nil)(opts)

		if opts.requestLogger != originalLogger {
			t.Error("nil logger should be ignored")
		}
	})
}

func TestWithRequestHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		header        string
		value         string
		expectIgnored bool
	}{
		{"valid header", "X-Custom", "value", false},
		{"empty header ignored", "", "value", true},
		{"whitespace header ignored", "   ", "value", true},
		{"Content-Type protected", "Content-Type", "text/plain", true},
		{"content-type protected (case insensitive)", "content-type", "text/plain", true},
		{"Accept protected", "Accept", "text/plain", true},
		{"accept protected (case insensitive)", "ACCEPT", "text/plain", true},
		{"User-Agent protected", "User-Agent", "curl/8.0", true},
		{"auth token header protected", "X-Chatline-Auth-Token", "other-token", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			originalLen := len(opts.requestHeaders)

			WithRequestHeader(tt.header, tt.value)(opts)

			if tt.expectIgnored {
				if len(opts.requestHeaders) != originalLen {
					t.Errorf("header %q should have been ignored", tt.header)
				}

				if opts.requestHeaders["Content-Type"] != "application/json" {
					t.Error("Content-Type should not be changed")
				}
			} else if opts.requestHeaders[tt.header] != tt.value {
				t.Errorf("expected header %s=%s, got %s", tt.header, tt.value, opts.requestHeaders[tt.header])
			}
		})
	}
}

func TestWithTransport(t *testing.T) {
	t.Parallel()

	t.Run("valid transport", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		transport := &http.Transport{}
		WithTransport(transport)(opts)

		if opts.transport != transport {
			t.Error("expected transport to be set")
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		WithTransport(nil)(opts)

		if opts.transport != nil {
			t.Error("nil transport should be ignored")
		}
	})
}

func TestWithEnviron(t *testing.T) {
	t.Parallel()

	t.Run("valid snapshot", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		env := Environ{"HTTP_PROXY": "http://proxy.example:8080"}
		WithEnviron(env)(opts)

		if opts.environ["HTTP_PROXY"] != "http://proxy.example:8080" {
			t.Error("expected environ snapshot to be set")
		}
	})

	t.Run("empty snapshot forces direct", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		WithEnviron(Environ{})(opts)

		if opts.environ == nil {
			t.Error("empty snapshot should still be set")
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		WithEnviron(nil)(opts)

		if opts.environ != nil {
			t.Error("nil snapshot should be ignored")
		}
	})
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Options)
		wantError string
	}{
		{
			name:      "valid defaults",
			modify:    func(_ *Options) {},
			wantError: "",
		},
		{
			name:      "empty baseURL",
			modify:    func(o *Options) { o.baseURL = "" },
			wantError: "base URL must be set",
		},
		{
			name:      "relative baseURL",
			modify:    func(o *Options) { o.baseURL = "/bot" },
			wantError: `base URL "/bot" must be an absolute http(s) URL`,
		},
		{
			name:      "nil requestLogger",
			modify:    func(o *Options) { o.requestLogger = nil },
			wantError: "requestLogger must not be nil",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			tt.modify(opts)

			err := opts.Validate()

			if tt.wantError == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.wantError)
				} else if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("expected error %q, got %q", tt.wantError, err.Error())
				}
			}
		})
	}
}
