// Package client provides an HTTP client for the Chatline bot API: webhook
// registration, message sending, account introspection, user lookup,
// online-status queries, and public-chat posting.
//
// The client wraps [github.com/go-resty/resty/v2] with environment-driven
// forward-proxy support, bounded connection pooling, and pluggable logging.
// Every call is a single authenticated JSON POST; there are no retries.
//
// # Basic Usage
//
//	c, err := client.New("my-token", client.BotIdentity{Name: "MyBot"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	if _, err := c.SetWebhook(ctx, "https://example.com/hook", false); err != nil {
//	    log.Fatal(err)
//	}
//
//	_, err = c.SendMessage(ctx, client.Message{
//	    Receiver: "user-id",
//	    Type:     client.MessageTypeText,
//	    Data:     client.TextData("hello"),
//	})
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; all
// configuration is validated before [New] returns. [NewFromEnv] reads the
// configuration from CHATLINE_* environment variables instead.
//
// # Proxy Support
//
// The default transport honors HTTP_PROXY (falling back to HTTPS_PROXY) and
// the NO_PROXY bypass list on every request, re-reading the process
// environment per call. [WithEnviron] pins resolution to a fixed snapshot;
// [WithTransport] replaces the transport entirely. See [ResolveProxy] for
// the decision rule.
//
// # Error Behaviour
//
// Invalid arguments are reported before any network call. A non-200 response
// is collapsed into the generic [ErrResponse]; transport failures are
// returned unchanged. Each call fully succeeds or fully fails.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use the zaplog subpackage for a
// zap-backed implementation. The default [NoopLogger] discards all log
// output. Request and response bodies are logged at debug level; ensure your
// implementation redacts tokens before persisting logs.
package client
