package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the production Chatline bot API endpoint.
const DefaultBaseURL = "https://chatapi.chatline.io/bot"

// authTokenHeader carries the bot auth token; the token is duplicated in the
// request body per the wire contract.
const authTokenHeader = "X-Chatline-Auth-Token"

var (
	// ErrUnknownEndpoint is returned when a request names an operation that
	// has no entry in the endpoint table. It indicates a bug in this library,
	// not a runtime condition; no network call is made.
	ErrUnknownEndpoint = errors.New("unknown endpoint")

	// ErrResponse is returned when the API answers with a non-200 status.
	// The contract is deliberately generic: callers get success or failure,
	// nothing more.
	ErrResponse = errors.New("response error")
)

// operation selects an entry in the endpoint table.
type operation string

const (
	opSetWebhook      operation = "setWebhook"
	opGetAccountInfo  operation = "getAccountInfo"
	opGetUserDetails  operation = "getUserDetails"
	opGetOnlineStatus operation = "getOnlineStatus"
	opSendMessage     operation = "sendMessage"
	opPost            operation = "post"
)

// endpoints maps every supported operation to its URL path suffix. Static
// for the process lifetime.
var endpoints = map[operation]string{
	opSetWebhook:      "/set_webhook",
	opGetAccountInfo:  "/get_account_info",
	opGetUserDetails:  "/get_user_details",
	opGetOnlineStatus: "/get_online",
	opSendMessage:     "/send_message",
	opPost:            "/post",
}

// BotIdentity is the bot's public sender identity, stamped as the sender of
// every outgoing message.
type BotIdentity struct {
	Name   string
	Avatar string
}

// Client is a Chatline bot API client. It is safe for concurrent use; all
// configuration is read-only after [New] returns.
type Client struct {
	authToken string
	identity  BotIdentity
	options   *Options
	http      *resty.Client
}

// New creates a [Client] authenticated with the given bot token, sending
// messages under the given identity. Configuration is supplied as [Option]
// functions and validated before any client is returned.
func New(authToken string, identity BotIdentity, opts ...Option) (*Client, error) {
	if authToken == "" {
		return nil, errors.New("auth token must be set")
	}

	if identity.Name == "" {
		return nil, errors.New("bot name must be set")
	}

	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	transport := options.transport
	if transport == nil {
		environ := OSEnviron
		if options.environ != nil {
			env := options.environ
			environ = func() Environ { return env }
		}

		transport = newProxyTransport(environ)
	}

	httpClient := resty.New().
		SetTransport(transport).
		SetRetryCount(0).
		SetHeaders(options.requestHeaders).
		SetHeader(authTokenHeader, authToken).
		SetHeader("User-Agent", userAgent()).
		SetLogger(options.requestLogger)

	return &Client{
		authToken: authToken,
		identity:  identity,
		options:   options,
		http:      httpClient,
	}, nil
}

// Close releases idle connections held by the client's transport.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

// authStamper lets the dispatcher stamp the bot auth token into a request
// body. Every wire request type embeds [authRequest] to satisfy it, so the
// token cannot be overridden by caller payloads.
type authStamper interface {
	stampAuthToken(token string)
}

// send issues exactly one POST for the given operation and decodes a 200
// response into out. Non-200 statuses collapse into [ErrResponse]; transport
// errors are returned unchanged.
func (c *Client) send(ctx context.Context, op operation, payload authStamper, out any) error {
	path, ok := endpoints[op]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEndpoint, op)
	}

	payload.stampAuthToken(c.authToken)

	requestURL := c.options.baseURL + path
	c.options.requestLogger.Debugf("POST %s: %+v", requestURL, payload)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(requestURL)
	if err != nil {
		c.options.requestLogger.Errorf("POST %s failed: %v", requestURL, err)
		return err
	}

	c.options.requestLogger.Debugf("response from %s: %s", requestURL, resp.Body())

	if resp.StatusCode() != http.StatusOK {
		return ErrResponse
	}

	if out == nil {
		return nil
	}

	return json.Unmarshal(resp.Body(), out)
}
