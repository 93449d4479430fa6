package client

import (
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Environ is a snapshot of environment variables, keyed by name. The proxy
// resolver reads HTTP_PROXY, HTTPS_PROXY, and NO_PROXY (or their lower-case
// variants) from it.
type Environ map[string]string

// OSEnviron returns a snapshot of the current process environment.
func OSEnviron() Environ {
	env := make(Environ)

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	return env
}

func (e Environ) lookup(key string) string {
	if v := e[key]; v != "" {
		return v
	}

	return e[strings.ToLower(key)]
}

// ProxyDecision is the outcome of [ResolveProxy]: either direct connection
// (URL is nil) or connection through the given forward proxy. Any credentials
// present in the proxy URL are stripped.
type ProxyDecision struct {
	URL *url.URL
}

// UseProxy reports whether the request must go through a forward proxy.
func (d ProxyDecision) UseProxy() bool {
	return d.URL != nil
}

// ResolveProxy decides whether a request to target must be sent through a
// forward proxy, based on the given environment snapshot. It is a pure
// function of its inputs.
//
// The proxy URL is read from HTTP_PROXY, falling back to HTTPS_PROXY.
// NO_PROXY is a comma-separated list of substrings; if any of them occurs in
// the target URL the request goes direct. Plain substring match, not host
// patterns. A proxy URL that does not parse as an absolute http(s) URL is
// treated as unset.
func ResolveProxy(target string, env Environ) ProxyDecision {
	raw := env.lookup("HTTP_PROXY")
	if raw == "" {
		raw = env.lookup("HTTPS_PROXY")
	}

	if raw == "" {
		return ProxyDecision{}
	}

	for _, part := range strings.Split(env.lookup("NO_PROXY"), ",") {
		if part = strings.TrimSpace(part); part != "" && strings.Contains(target, part) {
			return ProxyDecision{}
		}
	}

	proxyURL, err := url.Parse(raw)
	if err != nil || proxyURL.Host == "" || (proxyURL.Scheme != "http" && proxyURL.Scheme != "https") {
		return ProxyDecision{}
	}

	// Credentials are never forwarded to the proxy.
	proxyURL.User = nil

	return ProxyDecision{URL: proxyURL}
}

// maxPoolSize bounds idle and total connections per transport so that socket
// usage stays bounded under load.
const maxPoolSize = 256

// newProxyTransport builds the default transport: a clone of the stdlib
// default with bounded connection pools and a Proxy callback that re-resolves
// the proxy decision from a fresh environment snapshot on every request.
func newProxyTransport(environ func() Environ) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = maxPoolSize
	transport.MaxIdleConnsPerHost = maxPoolSize
	transport.MaxConnsPerHost = maxPoolSize
	transport.Proxy = func(req *http.Request) (*url.URL, error) {
		return ResolveProxy(req.URL.String(), environ()).URL, nil
	}

	return transport
}
